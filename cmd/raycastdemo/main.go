// Command raycastdemo is a thin ebiten host around the raycaster: it loads
// a scene from YAML, drives a camera from keyboard input, and blits each
// rendered frame onto the window.
package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"raycastengine/internal/camera"
	"raycastengine/internal/color"
	"raycastengine/internal/render"
	"raycastengine/internal/rlog"
	"raycastengine/internal/scene"
	"raycastengine/internal/sceneconfig"
	"raycastengine/internal/screen"
	"raycastengine/internal/textureio"
	"raycastengine/internal/vector"
)

const (
	windowWidth   = 640
	windowHeight  = 480
	renderQuality = 1.0
	tps           = 60

	moveSpeed = 2.5 / tps
	turnSpeed = 2.0 / tps
)

type game struct {
	scene  *scene.Scene
	cam    *camera.Camera
	rd     *render.Renderer
	screen *screen.Screen
	img    *ebiten.Image
	yaw    float64
}

func newGame(scenePath string) (*game, error) {
	textureio.SetLogger(rlog.New("textureio", rlog.LevelWarn))
	render.SetLogger(rlog.New("render", rlog.LevelDebug))

	doc, err := sceneconfig.Load(scenePath)
	if err != nil {
		return nil, err
	}

	textures := textureio.NewManager([]string{"assets/textures"})
	sc, err := doc.Build(textures)
	if err != nil {
		return nil, err
	}

	s, err := screen.New(windowWidth, windowHeight, renderQuality)
	if err != nil {
		return nil, err
	}

	yaw := math.Pi / 2
	lighting := camera.Lighting{Brightness: 1.2, MaxBrightness: 1.0, Color: color.RGBA(255, 255, 255, 255)}
	cam := camera.New(vector.New3(3.5, 1.5, 0.5), yaw, 0.66, 0, lighting)

	return &game{
		scene:  sc,
		cam:    cam,
		rd:     render.NewParallel(0),
		screen: s,
		img:    ebiten.NewImage(s.Width(), s.Height()),
		yaw:    yaw,
	}, nil
}

func (g *game) Update() error {
	var forward, strafe float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.yaw -= turnSpeed
		g.cam.SetYaw(g.yaw)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.yaw += turnSpeed
		g.cam.SetYaw(g.yaw)
	}

	if forward != 0 || strafe != 0 {
		heading := g.cam.Direction.Normalize()
		side := g.cam.Plane.Normalize()
		delta := heading.Scale(forward).Add(side.Scale(strafe))
		g.cam.Move(vector.New3(delta.X, delta.Y, 0))
	}

	return nil
}

func (g *game) Draw(screenImg *ebiten.Image) {
	g.screen.Clear()
	if err := g.rd.Render(g.screen, g.scene, g.cam.Snapshot()); err != nil {
		log.Printf("render: %v", err)
		return
	}
	g.screen.Present(func(pixels []byte, w, h int) {
		g.img.WritePixels(pixels)
	})
	screenImg.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screen.Width(), g.screen.Height()
}

func main() {
	g, err := newGame("assets/scene.yaml")
	if err != nil {
		log.Fatalf("raycastdemo: %v", err)
	}
	defer g.rd.Close()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("raycastdemo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
