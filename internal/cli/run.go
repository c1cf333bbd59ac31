package cli

import (
	"fmt"
	"image"
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-binarize/internal/display"
	"github.com/ironsheep/image-binarize/internal/imaging"
	"github.com/ironsheep/image-binarize/internal/pipeline"
)

func newRunCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Show an image next to its grayscale and binary versions",
		Long: `Loads the image, converts it to grayscale, binarizes it and composes the three
images side by side. The composite is opened in the default image viewer and,
with --output, also written to a file whose extension selects the format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(args[0])
		},
	}

	flags := cmd.Flags()
	flags.IntP("threshold", "t", imaging.DefaultThreshold, "binarization threshold (0-255); pixels above it become white")
	flags.StringP("output", "o", "", "also save the composite to this file (.png, .jpg, .gif, .tif, .bmp)")
	flags.Bool("no-show", false, "do not open the composite in an image viewer")
	flags.Bool("labels", true, "draw a caption under each image")

	for _, name := range []string{"threshold", "output", "no-show", "labels"} {
		a.v.BindPFlag(name, flags.Lookup(name))
	}
	return cmd
}

func (a *app) run(path string) error {
	p := pipeline.New(a.v.GetInt("threshold"))
	if a.debug() {
		p.Logf = log.Printf
	}

	res, err := p.Run(path)
	if err != nil {
		return err
	}

	if a.debug() {
		for i, img := range res.Images() {
			s := imaging.Summarize(img)
			log.Printf("%s: %dx%d %s, mean %s, white %.1f%%",
				pipeline.Labels[i], s.Width, s.Height, s.Mode, s.MeanColor.Hex, s.WhiteRatio*100)
		}
	}

	var out image.Image = res.Composite
	if a.v.GetBool("labels") {
		out, err = display.Caption(res.Composite, imaging.Offsets(res.Images()), pipeline.Labels)
		if err != nil {
			return fmt.Errorf("failed to caption composite: %w", err)
		}
	}

	if output := a.v.GetString("output"); output != "" {
		if err := display.Save(out, output); err != nil {
			return err
		}
		log.Printf("Saved composite to %s", output)
	}

	if !a.v.GetBool("no-show") {
		if err := a.show(out); err != nil {
			return err
		}
	}
	return nil
}
