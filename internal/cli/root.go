// Package cli wires the pipeline, the display sinks and the MCP server into
// the binarize-image command line.
package cli

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/image-binarize/internal/display"
	"github.com/ironsheep/image-binarize/internal/imaging"
)

// BuildInfo is set by ldflags in main.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

type app struct {
	v       *viper.Viper
	cfgFile string
	build   BuildInfo

	// show displays the final image; replaced in tests.
	show func(img image.Image) error
	// stdin/stdout carry the MCP protocol for the serve command.
	stdin  io.Reader
	stdout io.Writer
}

// Execute runs the command line and exits non-zero on failure.
func Execute(build BuildInfo) {
	cmd := newRootCommand(&app{
		v:      viper.New(),
		build:  build,
		show:   display.Show,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	})
	if err := cmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "binarize-image",
		Short: "Grayscale and binarize images",
		Long: `binarize-image converts a color image to grayscale (ITU-R BT.601 luminance),
binarizes it with a fixed threshold and shows the three images side by side.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			a.initLogging()
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.binarize.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (info or debug)")
	a.v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newRunCommand(a),
		newServeCommand(a),
		newVersionCommand(a),
	)
	return root
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}
		// Search config in home directory with name ".binarize" (without extension).
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".binarize")
	}

	a.v.SetDefault("threshold", imaging.DefaultThreshold)
	a.v.SetEnvPrefix("BINARIZE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && a.cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// initLogging sends log output to stderr; stdout is reserved for the MCP
// protocol when serving.
func (a *app) initLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if a.debug() {
		log.Printf("binarize-image %s (built %s, commit %s)", a.build.Version, a.build.BuildTime, a.build.GitCommit)
		if used := a.v.ConfigFileUsed(); used != "" {
			log.Printf("Using config file: %s", used)
		}
	}
}

func (a *app) debug() bool {
	return a.v.GetString("log-level") == "debug"
}
