// Command easel replays a YAML gesture script on a headless canvas and
// saves the result.
//
//	easel -config easel.yaml -script steps.yaml -output out.png -view view.png
package main

import (
	"context"
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/script"
	"github.com/gogpu/gg"
)

func main() {
	var (
		configPath = flag.String("config", "easel.yaml", "config file (defaults when missing)")
		scriptPath = flag.String("script", "", "gesture script to replay")
		output     = flag.String("output", "canvas.png", "flattened canvas, .png or .pdf")
		viewOut    = flag.String("view", "", "optional screenshot of the window")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg, err := script.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	easel.SetLogger(script.NewLogger(cfg.Log, os.Stderr))

	ed, err := cfg.NewEditor()
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}

	if *scriptPath != "" {
		s, err := script.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		if err := s.Run(context.Background(), ed, nil); err != nil {
			log.Fatalf("Failed to run script: %v", err)
		}
	}

	if err := save(ed, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Canvas saved to %s (%dx%d)\n", *output, ed.Width(), ed.Height())

	if *viewOut != "" {
		w, h := cfg.ScreenSize()
		if err := saveView(ed, *viewOut, w, h); err != nil {
			log.Fatalf("Failed to save view: %v", err)
		}
		log.Printf("View saved to %s (%dx%d)\n", *viewOut, w, h)
	}
}

func save(ed *easel.Editor, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		err = ed.SavePDF(f)
	} else {
		err = ed.Save(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func saveView(ed *easel.Editor, path string, w, h int) error {
	screen := image.NewRGBA(image.Rect(0, 0, w, h))
	ed.RenderView(screen)

	dc := gg.NewContextForImage(screen)
	if c, ok := ed.Cursor(); ok {
		if err := c.Draw(dc); err != nil {
			return err
		}
	}
	return dc.SavePNG(path)
}
