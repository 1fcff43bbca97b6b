package store

// Config holds storefront configuration.
type Config struct {
	// OwnerEmail receives a notification for every sale.
	OwnerEmail string `env:"OWNER_EMAIL,required"`

	// PDFDir is the directory holding the eBook files referenced by the catalog.
	PDFDir string `env:"PDF_DIR" envDefault:"static/pdfs"`
}
