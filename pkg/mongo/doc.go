// Package mongo provides optional MongoDB connection management for the
// storefront.
//
// The catalog itself is served from a static JSON file, so MongoDB is not
// required for normal operation. When MONGODB_URL is set, the connection is
// established at startup with retry logic and exposed to the readiness
// probe; an empty URL yields ErrNotConfigured and the application runs
// without it.
//
// Usage:
//
//	cfg := mongo.Config{ConnectionURL: os.Getenv("MONGODB_URL")}
//	if cfg.Enabled() {
//		client, err := mongo.New(ctx, cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer client.Disconnect(context.Background())
//
//		ready := mongo.Healthcheck(client)
//	}
package mongo
