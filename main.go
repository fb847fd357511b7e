package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/arslanops/api/config"
	"github.com/arslanops/api/pkg/keepalive"
	"github.com/arslanops/api/routes"
	"github.com/arslanops/api/store"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {

	versionFlag := flag.Bool("version", false, "Print version info and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	config.Connect()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Run migrations
	if err := config.Migrations(config.DB); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}

	contentStore := store.NewContentStore(config.ContentFile())
	reportStore := store.NewReportStore(config.ReportsFile())

	handler := routes.RegisterRoutes(config.DB, contentStore, reportStore, config.UploadsDir())
	handlerWithCORS := enableCORS(handler)

	// Keep-alive self-ping so the hosting platform does not idle us out.
	if base := config.ExternalURL(); base != "" {
		pinger := keepalive.New(strings.TrimRight(base, "/")+"/health", 14*time.Minute, 10*time.Second)
		go pinger.Run(context.Background())
		log.Println("Keep-alive pinger started for", base)
	}

	log.Println("Server starting at port", port)
	log.Fatal(http.ListenAndServe(":"+port, handlerWithCORS))
}

// enableCORS allows the local dev frontend, the production domains and the
// optional PRODUCTION_ORIGIN from the environment.
func enableCORS(next http.Handler) http.Handler {
	origins := allowedOrigins()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && origins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		// Handle preflight (OPTIONS)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func allowedOrigins() map[string]bool {
	origins := map[string]bool{
		"http://localhost:3000":     true,
		"http://127.0.0.1:3000":     true,
		"https://arslanops.com":     true,
		"https://www.arslanops.com": true,
	}
	if o := config.ProductionOrigin(); o != "" {
		origins[strings.TrimRight(o, "/")] = true
	}
	return origins
}
