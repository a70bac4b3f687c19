// Package cli implements the mtkgpkg2svg command-line interface.
//
// The single command converts layers from Topographic Database GeoPackage
// files of the National Land Survey of Finland into one SVG map sheet. The
// render is described by the center point of the sheet (ETRS-TM35FIN
// northing and easting), the physical output size in millimetres, and the
// map scale.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/teelisyys/mtkgpkg2svg/internal/render"
	"github.com/teelisyys/mtkgpkg2svg/pkg/mtk"
)

// renderRequest collects the parsed command line of one conversion run.
type renderRequest struct {
	north      float64
	east       float64
	heightMM   float64
	widthMM    float64
	scale      int
	variant    mtk.Variant
	stylePath  string
	outputPath string
	inputPaths []string
}

// Execute runs the mtkgpkg2svg CLI and returns an error if the conversion
// fails. The logger is attached to the command context and accessible via
// loggerFromContext.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var (
		verbose   bool
		heightMM  float64
		widthMM   float64
		scale     int
		variant   string
		stylePath string
	)

	root := &cobra.Command{
		Use:   "mtkgpkg2svg NORTH EAST OUTPUT INPUT...",
		Short: "Convert Topographic Database GeoPackage layers to an SVG map sheet",
		Long: `mtkgpkg2svg renders layers from Topographic Database GeoPackage files
of the National Land Survey of Finland into one SVG map sheet.

NORTH and EAST are the ETRS-TM35FIN coordinates of the sheet's center
point. OUTPUT is the SVG file to write; INPUT names one or more .gpkg
files read in order.`,
		Args:          cobra.MinimumNArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			north, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid north coordinate %q: %w", args[0], err)
			}
			east, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid east coordinate %q: %w", args[1], err)
			}

			req := renderRequest{
				north:      north,
				east:       east,
				heightMM:   heightMM,
				widthMM:    widthMM,
				scale:      scale,
				variant:    mtk.Variant(variant),
				stylePath:  stylePath,
				outputPath: args[2],
				inputPaths: args[3:],
			}
			return run(cmd.Context(), req)
		},
	}

	root.Flags().Float64Var(&heightMM, "height", 210, "height of the output in mm")
	root.Flags().Float64Var(&widthMM, "width", 297, "width of the output in mm")
	root.Flags().IntVar(&scale, "scale", 25000, "scale of the output (1:scale)")
	root.Flags().StringVar(&variant, "variant", string(mtk.VariantTopographic),
		"presentation variant (topo or overview)")
	root.Flags().StringVar(&stylePath, "style", "",
		"TOML style table replacing the built-in variant styles")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

func run(ctx context.Context, req renderRequest) error {
	logger := loggerFromContext(ctx)

	specs, err := mtk.Layers(req.variant)
	if err != nil {
		return err
	}

	styles, err := loadStyles(req)
	if err != nil {
		return err
	}

	window := render.Window{
		WidthMM:  req.widthMM,
		HeightMM: req.heightMM,
		Scale:    req.scale,
	}
	bounds := window.Bounds(req.east, req.north)
	logger.Debug("render window",
		"west", bounds.West, "south", bounds.South,
		"east", bounds.East, "north", bounds.North)

	loading := newProgress(logger)
	ds, err := mtk.Load(req.inputPaths, specs)
	if err != nil {
		return err
	}
	loading.done(fmt.Sprintf("Loaded %d features from %d files",
		ds.FeatureCount(), len(req.inputPaths)))

	renderer := &render.Renderer{
		Window:     bounds,
		Projection: render.NewProjection(bounds, req.scale),
		Styles:     styles,
		Logger:     logger,
	}

	drawing := newProgress(logger)
	var buf bytes.Buffer
	if err := renderer.Render(&buf, ds, specs); err != nil {
		return err
	}
	drawing.done("Rendered " + req.outputPath)

	if err := os.WriteFile(req.outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func loadStyles(req renderRequest) (render.StyleTable, error) {
	if req.stylePath != "" {
		return render.LoadStyles(req.stylePath)
	}
	return render.StylesForVariant(req.variant)
}
