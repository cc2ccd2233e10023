package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/retrotex/ntscjpng/pkg/dither"
	"github.com/retrotex/ntscjpng/pkg/gamut"
	"github.com/retrotex/ntscjpng/pkg/pipeline"
	"github.com/retrotex/ntscjpng/pkg/pngio"
	"github.com/spf13/cobra"
)

// NewConvertCmd creates the convert cobra command
func NewConvertCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("convert <%s|%s> <input.png> <output.png>", gamut.TokenNTSCJToSRGB, gamut.TokenSRGBToNTSCJ),
		Short: "convert a PNG between the NTSC-J and sRGB gamuts",
		Long:  "decodes input.png (any color type, normalized to RGBA8), remaps every pixel through the selected gamut matrix, and writes output.png as 8-bit RGBA",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			// All token validation happens before any file I/O; a
			// usage error must never leave a partial output behind.
			direction, err := gamut.ParseDirection(args[0])
			if err != nil {
				return err
			}
			ditherTok, _ := cmd.Flags().GetString("dither")
			strategy, err := dither.ParseStrategy(ditherTok)
			if err != nil {
				return err
			}

			inPath, outPath := args[1], args[2]
			r, err := pngio.Decode(inPath)
			if err != nil {
				return err
			}
			slog.InfoContext(ctx, "decoded",
				"input", inPath,
				"width", r.Width,
				"height", r.Height,
			)

			pipeline.Run(r, pipeline.Options{Direction: direction, Dither: strategy})

			if err := pngio.Encode(r, outPath); err != nil {
				return err
			}
			slog.InfoContext(ctx, "converted",
				"mode", direction.String(),
				"dither", strategy.String(),
				"output", outPath,
			)
			return nil
		},
	}
	cmd.Flags().String("dither", dither.Quasirandom.String(), "dither strategy (quasirandom|bayer|floyd-steinberg); quasirandom is safe for swizzled textures")
	return cmd
}
