//cmd/seeder/main.go
package main

import (
    "context"
    "fmt"
    "os"
    "path/filepath"
    "sort"

    "github.com/joho/godotenv"

    "github.com/unclebandit/campaign-copy-backend/internal/config"
    "github.com/unclebandit/campaign-copy-backend/internal/db"
    "github.com/unclebandit/campaign-copy-backend/internal/logger"
)

// Applies every migrations/*.sql file in name order.
func main() {
    logger.InitZap()
    defer logger.Sync()

    _ = godotenv.Load()

    cfg, err := config.Load()
    if err != nil || !cfg.Database.Enabled() {
        logger.LogEf("DATABASE_URL is required (config error: %v)", err)
        os.Exit(1)
    }

    conn, err := db.Open(context.Background(), cfg.Database.URL)
    if err != nil {
        logger.LogEf("%v", err)
        os.Exit(1)
    }
    defer conn.Close()

    files, err := filepath.Glob("migrations/*.sql")
    if err != nil {
        logger.LogEf("failed to list migrations: %v", err)
        os.Exit(1)
    }
    sort.Strings(files)

    for _, file := range files {
        content, err := os.ReadFile(file)
        if err != nil {
            logger.LogEf("failed to read %s: %v", file, err)
            os.Exit(1)
        }

        if _, err := conn.Exec(string(content)); err != nil {
            logger.LogEf("failed to execute %s: %v", file, err)
            os.Exit(1)
        }
        fmt.Printf("Applied: %s\n", file)
    }

    fmt.Println("Database migrations completed successfully!")
}
