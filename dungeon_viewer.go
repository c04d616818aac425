package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dungeon-forge/components"
	"dungeon-forge/config"
	"dungeon-forge/generation"
)

// DungeonViewer implements ebiten.Game interface for browsing generated dungeons.
type DungeonViewer struct {
	generator   *generation.DungeonGenerator
	tileMapping *components.TileMappingComponent
	dungeon     *generation.Dungeon
	mapComp     *components.MapComponent // What is drawn: the dungeon grid or a cave
	showCave    bool
	pixel       *ebiten.Image
	status      string
}

// NewDungeonViewer creates a viewer and generates the first dungeon
func NewDungeonViewer(cfg config.DungeonConfig) (*DungeonViewer, error) {
	generator, err := generation.NewDungeonGenerator(cfg)
	if err != nil {
		return nil, err
	}

	viewer := &DungeonViewer{
		generator:   generator,
		tileMapping: components.NewTileMappingComponent(),
	}
	if err := viewer.regenerate(cfg.Seed); err != nil {
		return nil, err
	}
	return viewer, nil
}

// regenerate reseeds the generator and rebuilds whatever is being shown
func (v *DungeonViewer) regenerate(seed int64) error {
	v.generator.SetSeed(seed)
	cfg := v.generator.Config()

	if v.showCave {
		v.dungeon = nil
		v.mapComp = v.generator.GenerateCave(cfg.Width, cfg.Height, generation.DefaultCaveSteps)
		v.status = fmt.Sprintf("cave  seed=%d  [R] next seed  [C] dungeon  [Esc] quit", seed)
		return nil
	}

	dungeon, err := v.generator.Generate()
	if err != nil {
		return err
	}
	v.dungeon = dungeon
	v.mapComp = dungeon.Map
	v.status = fmt.Sprintf("seed=%d  rooms=%d  doors=%d  [R] next seed  [C] cave  [Esc] quit",
		seed, len(dungeon.Rooms), dungeon.DoorCount())
	return nil
}

// Update handles input
func (v *DungeonViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return v.regenerate(v.generator.Seed() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.showCave = !v.showCave
		return v.regenerate(v.generator.Seed())
	}
	return nil
}

// Draw renders the grid below a one line status bar
func (v *DungeonViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if v.pixel == nil {
		v.pixel = ebiten.NewImage(1, 1)
		v.pixel.Fill(color.White)
	}

	for y := 0; y < v.mapComp.Height; y++ {
		for x := 0; x < v.mapComp.Width; x++ {
			tile := v.mapComp.Tiles[y][x]
			if tile == components.TileUnexplored {
				continue
			}
			v.drawTile(screen, x, y, v.tileMapping.GetTileDefinition(tile).FG)
		}
	}

	ebitenutil.DebugPrintAt(screen, v.status, 2, 0)
}

// drawTile fills one grid cell with a solid color
func (v *DungeonViewer) drawTile(screen *ebiten.Image, x, y int, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(config.TileSize), float64(config.TileSize))
	op.GeoM.Translate(float64(x*config.TileSize), float64(y*config.TileSize+config.StatusBarHeight))
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(v.pixel, op)
}

// Layout returns the logical screen size for the configured grid
func (v *DungeonViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := v.generator.Config()
	return config.GetScreenDimensions(cfg.Width, cfg.Height)
}
