package storage

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Connect selects a backend from the environment:
//
//	STORAGE_BACKEND  memory (default) | redis | sqlite
//	REDIS_ADDR       redis address, default localhost:6379
//	REDIS_PREFIX     key prefix for the redis backend
//	SQLITE_PATH      database file, default inventory.db
//
// A .env file in the working directory is loaded first when present.
// Connect never fails: a backend that cannot be opened falls back to
// the in-memory store with a logged warning, since persistence is
// best-effort for the catalog.
func Connect() KeyValue {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: failed to load .env file:", err)
		}
	}

	switch getEnv("STORAGE_BACKEND", "memory") {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		})
		log.Println("Storage backend: redis")
		return NewRedisStore(client, getEnv("REDIS_PREFIX", ""))

	case "sqlite":
		store, err := OpenSQLiteStore(getEnv("SQLITE_PATH", "inventory.db"))
		if err != nil {
			log.Println("Warning: sqlite store unavailable, using memory:", err)
			return NewMemoryStore()
		}
		log.Println("Storage backend: sqlite")
		return store

	default:
		log.Println("Storage backend: memory")
		return NewMemoryStore()
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
