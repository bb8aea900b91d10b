package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/polaris/asset"
	"github.com/achilleasa/polaris/log"
	"github.com/achilleasa/polaris/scene"
	"github.com/achilleasa/polaris/types"
)

type textSceneReader struct {
	logger log.Logger

	// The parsed scene.
	scene *scene.Scene

	// Tracks which materials are referenced by at least one sphere.
	usedMaterials map[uint32]bool

	// An error stack that provides additional error information when
	// scene files include other files.
	errStack []string

	// Include depth guard against files that include themselves.
	depth int
}

const maxIncludeDepth = 16

// Create a new text scene reader.
func newTextSceneReader() *textSceneReader {
	return &textSceneReader{
		logger:        log.New("text scene reader"),
		scene:         scene.NewScene(),
		usedMaterials: make(map[uint32]bool),
		errStack:      make([]string, 0),
	}
}

// Read scene definition.
func (r *textSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	err := r.parse(sceneRes)
	if err != nil {
		return nil, err
	}

	for index, m := range r.scene.Materials {
		if !r.usedMaterials[uint32(index)] {
			r.logger.Warningf("material %q is not used by any sphere", m.Name)
		}
	}

	if err = r.scene.Validate(); err != nil {
		return nil, r.emitError(sceneRes.Path(), 0, "%s", err.Error())
	}

	r.logger.Noticef("parsed %d materials and %d spheres in %d ms", len(r.scene.Materials), len(r.scene.Spheres), time.Since(start).Nanoseconds()/1e6)
	return r.scene, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *textSceneReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if line > 0 {
		errMsg = fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n"))
	} else {
		errMsg = fmt.Sprintf("[%s] error: %s\n%s", file, msg, strings.Join(r.errStack, "\n"))
	}

	return fmt.Errorf("%s", strings.Trim(errMsg, "\n"))
}

// Push a frame to the error stack.
func (r *textSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *textSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Parse scene file.
func (r *textSceneReader) parse(res *asset.Resource) error {
	var lineNum int = 0
	var err error

	r.depth++
	defer func() { r.depth-- }()
	if r.depth > maxIncludeDepth {
		return r.emitError(res.Path(), 0, "include depth exceeds %d; check for recursive includes", maxIncludeDepth)
	}

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "include":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "include"; expected 1 argument; got %d`, len(lineTokens)-1)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [include]", res.Path(), lineNum))
			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			err = r.parse(incRes)
			incRes.Close()
			if err != nil {
				return err
			}
			r.popFrame()
		case "material":
			err = r.parseMaterial(lineTokens)
		case "sphere":
			err = r.parseSphere(lineTokens)
		case "camera_eye":
			r.scene.Camera.Eye, err = parseVec3(lineTokens)
		case "camera_look":
			r.scene.Camera.Look, err = parseVec3(lineTokens)
		case "camera_up":
			r.scene.Camera.Up, err = parseVec3(lineTokens)
		case "camera_fov":
			r.scene.Camera.FOV, err = parseFloat(lineTokens)
		case "camera_aspect":
			r.scene.Camera.Ratio, err = parseFloat(lineTokens)
		case "camera_aperture":
			r.scene.Camera.Aperture, err = parseFloat(lineTokens)
		case "camera_focus":
			r.scene.Camera.FocusDistance, err = parseFloat(lineTokens)
		default:
			err = fmt.Errorf(`unknown directive "%s"`, lineTokens[0])
		}

		if err != nil {
			return r.emitError(res.Path(), lineNum, "%s", err.Error())
		}
	}

	if err = scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}

	return nil
}

// Parse a material definition. Definitions use one of the following formats:
// material name diffuse r g b
// material name metal r g b fuzz
// material name glass ior [r g b]
func (r *textSceneReader) parseMaterial(lineTokens []string) error {
	if len(lineTokens) < 3 {
		return fmt.Errorf(`unsupported syntax for "material"; expected at least 2 arguments: name type; got %d`, len(lineTokens)-1)
	}

	name := lineTokens[1]
	if _, exists := r.scene.MaterialIndex(name); exists {
		return fmt.Errorf(`material "%s" already defined`, name)
	}

	matType, err := scene.MaterialTypeFromName(lineTokens[2])
	if err != nil {
		return err
	}

	// Shift tokens so that the parse helpers see the type as the keyword
	args := lineTokens[2:]

	var mat scene.Material
	switch matType {
	case scene.Diffuse:
		if len(args) != 4 {
			return fmt.Errorf(`unsupported syntax for "diffuse" material; expected 3 arguments: r g b; got %d`, len(args)-1)
		}
		albedo, err := parseVec3(args)
		if err != nil {
			return err
		}
		mat = scene.NewDiffuse(name, albedo)
	case scene.Metal:
		if len(args) != 5 {
			return fmt.Errorf(`unsupported syntax for "metal" material; expected 4 arguments: r g b fuzz; got %d`, len(args)-1)
		}
		albedo, err := parseVec3(args)
		if err != nil {
			return err
		}
		fuzz, err := parseFloat(args[3:])
		if err != nil {
			return err
		}
		mat = scene.NewMetal(name, albedo, fuzz)
	case scene.Glass:
		if len(args) != 2 && len(args) != 5 {
			return fmt.Errorf(`unsupported syntax for "glass" material; expected 1 or 4 arguments: ior [r g b]; got %d`, len(args)-1)
		}
		ior, err := parseFloat(args)
		if err != nil {
			return err
		}
		albedo := types.Vec3{1, 1, 1}
		if len(args) == 5 {
			albedo, err = parseVec3(args[1:])
			if err != nil {
				return err
			}
		}
		mat = scene.NewGlass(name, ior, albedo)
	}

	if err = mat.Validate(); err != nil {
		return err
	}

	r.scene.AddMaterial(mat)
	return nil
}

// Parse a sphere definition. Definitions use the following format:
// sphere cX cY cZ radius material_name
func (r *textSceneReader) parseSphere(lineTokens []string) error {
	if len(lineTokens) != 6 {
		return fmt.Errorf(`unsupported syntax for "sphere"; expected 5 arguments: cX cY cZ radius material; got %d`, len(lineTokens)-1)
	}

	center, err := parseVec3(lineTokens)
	if err != nil {
		return err
	}

	radius, err := strconv.ParseFloat(lineTokens[4], 64)
	if err != nil {
		return err
	}

	matIndex, exists := r.scene.MaterialIndex(lineTokens[5])
	if !exists {
		return fmt.Errorf(`undefined material with name "%s"`, lineTokens[5])
	}
	r.usedMaterials[matIndex] = true

	r.scene.AddSphere(center, radius, matIndex)
	return nil
}

// Parse a float scalar value.
func parseFloat(lineTokens []string) (float64, error) {
	if len(lineTokens) < 2 {
		return 0, fmt.Errorf(`unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	return strconv.ParseFloat(lineTokens[1], 64)
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	var v types.Vec3
	for index := 0; index < 3; index++ {
		f, err := strconv.ParseFloat(lineTokens[index+1], 64)
		if err != nil {
			return types.Vec3{}, err
		}
		v[index] = f
	}

	return v, nil
}
