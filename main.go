package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/craftkit/internal/config"
	"github.com/cristianadrielbraun/craftkit/internal/handlers"
)

func main() {
	cfg := config.FromEnv()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	// Multipart parts beyond this spill to temp files; the upload cap itself
	// is enforced per request.
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	// Static assets
	r.Static("/web/static", cfg.StaticDir)

	h := handlers.New(cfg)
	h.Register(r)

	addr := cfg.Addr()
	log.Printf("craftkit listening on %s (upload limit %d MB, canvas limit %d px)",
		addr, cfg.MaxUploadBytes>>20, cfg.MaxCanvasPixels)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
