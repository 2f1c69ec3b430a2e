package main

import (
	"embed"
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Tree Breaker
// ------------
// A brick breaker that plays itself on a 500-light Christmas tree. The
// simulation lives in Game and only knows about the light catalog and the
// frame buffer; this file is the driver around it: a desktop simulator
// window that owns the frame buffer, ticks the game at the configured rate
// and shows what the physical tree would show.
//
// The same deterministic tick function would drive the real tree: swap this
// Gui for something that pushes the frame buffer to the LED controller.

// ReleaseVersion is the version of an executable built and given to someone
// to run on their tree. It is meant as a unique label for the behavior that
// executable produces, and it must change when SimulationVersion or
// InputVersion change.
const ReleaseVersion = 3

//go:embed data/*
var embeddedFiles embed.FS

type GuiState int64

const (
	ShowOngoing GuiState = iota
	Playback
)

type Gui struct {
	Config
	game     *Game
	frameBuf []LED
	catalog  []Vec3
	visTree  VisTree
	capture  Capture

	FSys                 FS
	folderWatcher        FolderWatcher
	defaultFont          font.Face
	state                GuiState
	frameIdx             int64
	playbackPaused       bool
	pressedKeys          []ebiten.Key
	justPressedKeys      []ebiten.Key // keys pressed in this frame
	FrameSkipAltArrow    int64
	FrameSkipShiftArrow  int64
	buttonPlaybackBar    image.Rectangle
	adjustedGameWidth    int64
	adjustedGameHeight   int64
	username             string
	uploadCaptureChannel chan Capture
	devModeEnabled       bool
}

func main() {
	ebiten.SetWindowSize(700, 950)
	ebiten.SetWindowTitle("Tree Breaker")

	var g Gui
	g.username = getUsername()
	g.FrameSkipAltArrow = 1
	g.FrameSkipShiftArrow = 10
	// A channel size of 10 means the channel will buffer 10 captures before
	// it is full and sends start being skipped. The uploader rarely falls
	// behind by more than one.
	g.uploadCaptureChannel = make(chan Capture, 10)
	go UploadCapture(g.username, g.uploadCaptureChannel)

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher. Check if folder contents changed but do
		// nothing with the result, we just want the watcher to record the
		// current timestamps. Otherwise the first Update would immediately
		// restart the show it just started.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	if g.StartState == "Playback" {
		g.StartPlayback()
	} else if g.StartState == "Show" {
		g.StartShow()
	} else {
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	ebiten.SetTPS(int(g.Fps))

	err := ebiten.RunGame(&g)
	Check(err)
}

// LoadGuiData reads the config and the light catalog. When reading loose
// files (not the embedded ones), read over and over until a full read
// succeeds, to avoid crashing on files that are mid-save from an editor.
func (g *Gui) LoadGuiData() {
	previousVal := CheckCrashes
	if g.folderWatcher.Folder != "" {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		g.loadCatalog()
		g.loadFont()

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal
}

func (g *Gui) loadCatalog() {
	if g.CoordsFile != "" && FileExists(g.FSys, g.CoordsFile) {
		data, err := g.FSys.ReadFile(g.CoordsFile)
		Check(err)
		g.catalog, err = ParseCoordsCSV(data)
		Check(err)
		return
	}
	// No coords scanned yet: run on a synthetic spiral cone so everything
	// can be developed and demoed without a physical tree.
	g.catalog = GenerateConePoints(500)
}

func (g *Gui) loadFont() {
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    24,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}

// StartShow builds a fresh game from the current config and begins
// recording it.
func (g *Gui) StartShow() {
	params := g.Config.GameParams()
	g.frameBuf = make([]LED, len(g.catalog))
	game, err := NewGame(g.catalog, g.frameBuf, params)
	Check(err)
	g.game = game
	g.visTree = NewVisTree(game.Cloud,
		float64(TreeAreaWidth), float64(TreeAreaHeight))
	g.capture = NewCapture(params, g.catalog)
	g.frameIdx = 0
	g.state = ShowOngoing

	go InitializeIdInDbHttp(g.username, ReleaseVersion, SimulationVersion,
		InputVersion, g.capture.Id)
}

func (g *Gui) StartPlayback() {
	g.capture = DeserializeCapture(ReadFile(g.PlaybackFile))
	g.game, g.frameBuf = g.capture.NewGame()
	g.visTree = NewVisTree(g.game.Cloud,
		float64(TreeAreaWidth), float64(TreeAreaHeight))
	g.frameIdx = 0
	g.state = Playback
}

func UploadCapture(user string, ch chan Capture) {
	for c := range ch {
		UploadDataToDbHttp(user, c.ReleaseVersion, c.SimulationVersion,
			c.InputVersion, c.Id, c.Serialize())
	}
}
