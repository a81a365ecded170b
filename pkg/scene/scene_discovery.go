package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string // One line summary
}

type builtinScene struct {
	info  SceneInfo
	build func(Options) *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default",
			Description: "Diffuse ground, diffuse center sphere and two metal spheres",
		},
		build: NewDefaultScene,
	},
	"diffuse": {
		info: SceneInfo{
			ID:          "diffuse",
			DisplayName: "Diffuse",
			Description: "Gray diffuse sphere on a gray diffuse ground",
		},
		build: NewDiffuseScene,
	},
	"single-sphere": {
		info: SceneInfo{
			ID:          "single-sphere",
			DisplayName: "Single Sphere",
			Description: "One diffuse sphere at (0,0,-1) with radius 0.5",
		},
		build: NewSingleSphereScene,
	},
}

// ListScenes returns all built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// New builds the named built-in scene
func New(name string, opts Options) (*Scene, error) {
	s, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %q", name)
	}
	return s.build(opts), nil
}
