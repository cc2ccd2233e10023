package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/retrotex/ntscjpng/pkg/pngio"
	"github.com/spf13/cobra"
)

// NewIdentifyCmd creates the identify cobra command
func NewIdentifyCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identify <file.png>",
		Short: "inspect PNG dimensions and color model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := pngio.Identify(path)
			if err != nil {
				return err
			}
			st, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			fmt.Printf("File:        %s\n", path)
			fmt.Printf("Dimensions:  %d x %d\n", info.Width, info.Height)
			fmt.Printf("Color model: %s\n", info.ColorModel)
			fmt.Printf("File size:   %d bytes\n", st.Size())
			return nil
		},
	}
	return cmd
}
