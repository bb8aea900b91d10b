package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/polaris/log"
	"github.com/achilleasa/polaris/scene"
	"github.com/achilleasa/polaris/types"
)

type textSceneWriter struct {
	logger log.Logger
	w      *bufio.Writer
}

// Write scene definition to a file using the text scene format.
func WriteScene(sc *scene.Scene, sceneFile string) error {
	f, err := os.Create(sceneFile)
	if err != nil {
		return err
	}

	err = Write(f, sc)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Write scene definition to w using the text scene format. Floats are
// written with the minimum number of digits that parse back to the same value.
func Write(w io.Writer, sc *scene.Scene) error {
	tw := &textSceneWriter{
		logger: log.New("text scene writer"),
		w:      bufio.NewWriter(w),
	}
	return tw.write(sc)
}

func (tw *textSceneWriter) write(sc *scene.Scene) error {
	if err := sc.Validate(); err != nil {
		return err
	}

	start := time.Now()

	fmt.Fprintf(tw.w, "# materials\n")
	for _, m := range sc.Materials {
		if strings.ContainsAny(m.Name, " \t#") || m.Name == "" {
			return fmt.Errorf("writer: material name %q cannot be represented in the text format", m.Name)
		}

		switch m.Type {
		case scene.Diffuse:
			fmt.Fprintf(tw.w, "material %s diffuse %s\n", m.Name, formatVec3(m.Albedo))
		case scene.Metal:
			fmt.Fprintf(tw.w, "material %s metal %s %s\n", m.Name, formatVec3(m.Albedo), formatFloat(m.Fuzz))
		case scene.Glass:
			fmt.Fprintf(tw.w, "material %s glass %s %s\n", m.Name, formatFloat(m.IOR), formatVec3(m.Albedo))
		}
	}

	fmt.Fprintf(tw.w, "\n# spheres\n")
	for _, s := range sc.Spheres {
		fmt.Fprintf(tw.w, "sphere %s %s %s\n", formatVec3(s.Center), formatFloat(s.Radius), sc.Materials[s.MaterialIndex].Name)
	}

	cam := sc.Camera
	fmt.Fprintf(tw.w, "\n# camera\n")
	fmt.Fprintf(tw.w, "camera_eye %s\n", formatVec3(cam.Eye))
	fmt.Fprintf(tw.w, "camera_look %s\n", formatVec3(cam.Look))
	fmt.Fprintf(tw.w, "camera_up %s\n", formatVec3(cam.Up))
	fmt.Fprintf(tw.w, "camera_fov %s\n", formatFloat(cam.FOV))
	fmt.Fprintf(tw.w, "camera_aspect %s\n", formatFloat(cam.Ratio))
	fmt.Fprintf(tw.w, "camera_aperture %s\n", formatFloat(cam.Aperture))
	fmt.Fprintf(tw.w, "camera_focus %s\n", formatFloat(cam.FocusDistance))

	if err := tw.w.Flush(); err != nil {
		return err
	}

	tw.logger.Infof("wrote %d materials and %d spheres in %d ms", len(sc.Materials), len(sc.Spheres), time.Since(start).Nanoseconds()/1e6)
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatVec3(v types.Vec3) string {
	return formatFloat(v[0]) + " " + formatFloat(v[1]) + " " + formatFloat(v[2])
}
