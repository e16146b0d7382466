package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"cinematic-landing/internal/convert"
	"cinematic-landing/internal/engine2D"
	"cinematic-landing/internal/engine2D/scroll"
	"cinematic-landing/internal/page"
	"cinematic-landing/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	pagePath := flag.String("page", "wayfarian", "Page to show: a path, or a name under assets/pages")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging and show the debug overlay")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	fps := flag.Int("fps", 60, "Target frame rate")
	width := flag.Int("width", 0, "Window width (0 picks from the screen size)")
	height := flag.Int("height", 0, "Window height (0 picks from the screen size)")
	coalesce := flag.Bool("coalesce", true, "Run one scroll update per frame instead of one per scroll event")
	silent := flag.Bool("silent", false, "Do not play the soundtrack")
	seed := flag.Int64("seed", 0, "Particle seed (0 seeds from the clock)")
	variant := flag.String("variant", "", "Override the page's animation variant (cinematic, classic)")
	assets := flag.String("assets", "", "Extra asset directory searched after ./assets")
	extract := flag.String("extract", "", "Unpack the -page bundle into this directory and exit")
	flag.Parse()

	level, err := utils.ParseLevel(*logLevel)
	if err != nil {
		utils.Error("%v", err)
		os.Exit(2)
	}
	utils.CurrentLevel = level
	utils.DebugMode = *debugFlag
	if *debugFlag {
		utils.CurrentLevel = utils.LevelDebug
		utils.ShowDebugUI = true
	}
	utils.SilentMode = *silent
	utils.AssetsRoot = *assets

	path := utils.FindPageFile(*pagePath)
	if path == "" {
		utils.Error("Page not found: %s", *pagePath)
		os.Exit(1)
	}

	if *extract != "" {
		runExtract(path, *extract)
		return
	}

	utils.Info("--- Cinematic Landing Start ---")

	p, err := page.Load(path)
	if err != nil {
		utils.Error("Failed to load page %s: %v", path, err)
		os.Exit(1)
	}
	if *variant != "" {
		p.General.Variant = *variant
	}
	sections, err := p.SectionConfigs()
	if err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}
	utils.Info("Page loaded: %d sections, %d animated", len(p.Sections), len(sections))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	utils.Debug("Particle seed: %d", *seed)
	rng := rand.New(rand.NewSource(*seed))

	w, h := *width, *height
	if w <= 0 || h <= 0 {
		w, h = utils.DefaultWindowSize(1280, 720, 0.75)
	}
	defer utils.CloseX11()

	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	title := p.General.Title
	if title == "" {
		title = "Cinematic Landing"
	}
	rl.InitWindow(int32(w), int32(h), title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(*fps))

	doc := page.NewDocument(p)
	renderer, err := engine2D.NewRenderer(doc, loadTextures(p), rng)
	if err != nil {
		utils.Error("Failed to build renderer: %v", err)
		os.Exit(1)
	}
	defer renderer.Unload()

	vh := renderer.UpdateViewport(rl.GetScreenWidth(), rl.GetScreenHeight())
	engine := scroll.New(doc, sections,
		scroll.WithCoalescing(*coalesce),
		scroll.WithViewport(scroll.Viewport{Height: vh}),
	)

	window := NewWindow(p, doc, engine, renderer, *coalesce)
	defer window.Close()

	utils.Info("Starting render loop...")
	window.Run()
}

func runExtract(path, dir string) {
	b, err := convert.OpenBundle(path)
	if err != nil {
		utils.Error("Failed to open bundle %s: %v", path, err)
		os.Exit(1)
	}
	if err := b.Extract(dir); err != nil {
		utils.Error("Failed to extract %s: %v", path, err)
		os.Exit(1)
	}
	utils.Info("Extracted %d files to %s", len(b.Names()), dir)
}
