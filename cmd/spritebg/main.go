// Command spritebg removes complex backgrounds (checkerboard transparency
// patterns, white/gray fills) from small sprite images and assembles
// cleaned frames into sprite sheets.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/setanarut/spritebg"
	"github.com/setanarut/spritebg/utils"
)

var (
	debugMode  bool
	outputPath string
	methodName string
	dumpColors bool
	useKMeans  bool
	columns    int
	frameSize  int

	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "spritebg",
	Short: "Sprite background removal and sprite sheet assembly",
	Long: `spritebg strips checkerboard and white/gray backdrops from sprite
images and packs cleaned animation frames into sprite sheets.

Methods: auto, checkerboard, white_gray, edge_flood`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = initLogger(debugMode)
		if err := utils.CheckDecodeSupport(); err != nil {
			return fmt.Errorf("image decoding unavailable: %w", err)
		}
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <image>",
	Short: "Remove the background from one image with a single strategy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := spritebg.ParseMethod(methodName)
		if err != nil {
			return err
		}
		out, err := newProcessor().RemoveFile(args[0], outputPath, method)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean <image>",
	Short: "Try every strategy and keep the best result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newProcessor()
		out, err := p.CleanFile(args[0], outputPath)
		if err != nil {
			return err
		}
		if dumpColors {
			src, err := utils.OpenImage(args[0])
			if err != nil {
				return err
			}
			bg := spritebg.AnalyzeBackgroundColors(src, p.Analyze)
			swatch := swatchPath(out)
			if err := utils.SaveSwatch(bg.Colorful(), 64, swatch); err != nil {
				return err
			}
			logger.WithField("output", swatch).Info("background color swatch written")
		}
		fmt.Println(out)
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Clean every PNG in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := newProcessor().ProcessFolder(args[0], outputPath)
		if err != nil {
			return err
		}
		for _, w := range written {
			fmt.Println(w)
		}
		return nil
	},
}

var sheetCmd = &cobra.Command{
	Use:   "sheet <dir>",
	Short: "Assemble the PNGs of a directory into a sprite sheet as-is",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newProcessor()
		names, err := spritebg.ListPNGs(args[0])
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("no png files found in %s", args[0])
		}
		paths := make([]string, len(names))
		for i, n := range names {
			paths[i] = filepath.Join(args[0], n)
		}
		out := outputPath
		if out == "" {
			out = "sprite_sheet.png"
		}
		sheet := p.AssembleFiles(paths, columns, frameSize, frameSize)
		if err := utils.SaveImage(sheet, out); err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var framesCmd = &cobra.Command{
	Use:   "frames <dir>",
	Short: "Clean animation frames and pack them into a sprite sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := outputPath
		if out == "" {
			out = "sprite_sheet.png"
		}
		written, err := newProcessor().ProcessFrames(args[0], out)
		if err != nil {
			return err
		}
		fmt.Println(written)
		return nil
	},
}

func newProcessor() *spritebg.Processor {
	p := spritebg.NewProcessor(logger)
	if useKMeans {
		p.Analyze = spritebg.AnalyzeKMeans
	}
	return p
}

func swatchPath(outPath string) string {
	return strings.TrimSuffix(outPath, filepath.Ext(outPath)) + "_colors.png"
}

// initLogger mirrors the usual service setup: JSON logs by default, human
// readable text plus debug level when -debug is set.
func initLogger(debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if debug {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetLevel(logrus.InfoLevel)
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return l
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output path")
	rootCmd.PersistentFlags().BoolVar(&useKMeans, "kmeans", false, "derive background colors by k-means clustering")

	removeCmd.Flags().StringVar(&methodName, "method", "auto", "removal method: auto|checkerboard|white_gray|edge_flood")
	cleanCmd.Flags().BoolVar(&dumpColors, "dump-colors", false, "also write a swatch of the detected background colors")
	sheetCmd.Flags().IntVar(&columns, "columns", 4, "sheet columns")
	sheetCmd.Flags().IntVar(&frameSize, "frame-size", 32, "frame cell size in pixels")

	rootCmd.AddCommand(removeCmd, cleanCmd, batchCmd, sheetCmd, framesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
