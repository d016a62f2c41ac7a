package spritebg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/setanarut/spritebg/utils"
)

// ErrNoFrames means a frame directory held no PNG files.
var ErrNoFrames = errors.New("no png files found")

// placeholderSize is the side of the transparent frame substituted when a
// source frame cannot be processed at all.
const placeholderSize = 64

// Processor runs file and directory level cleaning. Unreadable inputs are
// logged and skipped so a batch never dies on a single bad file.
type Processor struct {
	Log *logrus.Logger
	// Analyze picks how background colors are derived in the classifier
	// path (frequency buckets or k-means clustering).
	Analyze AnalyzeMethod
}

func NewProcessor(log *logrus.Logger) *Processor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Processor{Log: log}
}

// RemoveFile strips the backdrop from one image with the given strategy
// and writes the result next to the input as <name>_transparent.png when
// outPath is empty. Returns the written path.
func (p *Processor) RemoveFile(inPath, outPath string, method Method) (string, error) {
	src, err := utils.OpenImage(inPath)
	if err != nil {
		return "", err
	}
	result, used, err := Remove(src, method)
	if err != nil {
		return "", err
	}
	if method == MethodAuto {
		p.Log.WithFields(logrus.Fields{"file": inPath, "method": used.String()}).
			Info("auto-detected background type")
	}
	if outPath == "" {
		outPath = derivedPath(inPath, "_transparent")
	}
	if err := utils.SaveImage(result, outPath); err != nil {
		return "", err
	}
	p.Log.WithFields(logrus.Fields{
		"file":   inPath,
		"output": outPath,
		"ratio":  TransparencyRatio(result),
	}).Info("background removed")
	return outPath, nil
}

// CleanFile runs every strategy on one image and keeps the best result by
// transparency ratio, writing <name>_clean.png when outPath is empty.
func (p *Processor) CleanFile(inPath, outPath string) (string, error) {
	src, err := utils.OpenImage(inPath)
	if err != nil {
		return "", err
	}
	sel := SelectBest(src)
	for _, res := range sel.Tried {
		entry := p.Log.WithFields(logrus.Fields{"file": inPath, "method": res.Method.String()})
		if res.Err != nil {
			entry.WithError(res.Err).Warn("strategy failed")
			continue
		}
		entry.WithField("ratio", res.Ratio).Debug("strategy result")
	}
	if sel.Image == nil {
		return "", fmt.Errorf("all removal strategies failed for %s", inPath)
	}
	if sel.Fallback {
		p.Log.WithField("file", inPath).Warn("no strategy inside the accepted transparency band, using white_gray result")
	} else {
		p.Log.WithFields(logrus.Fields{
			"file":   inPath,
			"method": sel.Method.String(),
			"ratio":  sel.Ratio,
		}).Info("best method selected")
	}
	if outPath == "" {
		outPath = derivedPath(inPath, "_clean")
	}
	if err := utils.SaveImage(sel.Image, outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

// ProcessFolder cleans every PNG in inDir with the color-set classifier
// and writes results under outDir (default <inDir>_processed), keeping
// file names. Returns the written paths. An empty folder is not an error;
// nothing is created and nil is returned.
func (p *Processor) ProcessFolder(inDir, outDir string) ([]string, error) {
	files, err := ListPNGs(inDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		p.Log.WithField("dir", inDir).Info("no png files found")
		return nil, nil
	}
	if outDir == "" {
		outDir = inDir + "_processed"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	for i, name := range files {
		inPath := filepath.Join(inDir, name)
		outPath := filepath.Join(outDir, name)
		p.Log.WithFields(logrus.Fields{
			"file":     name,
			"progress": fmt.Sprintf("%d/%d", i+1, len(files)),
		}).Info("processing")

		src, err := utils.OpenImage(inPath)
		if err != nil {
			p.Log.WithError(err).WithField("file", inPath).Warn("skipping unreadable file")
			continue
		}
		cleaned, bg := CleanSprite(src, p.Analyze)
		if err := utils.SaveImage(cleaned, outPath); err != nil {
			p.Log.WithError(err).WithField("file", outPath).Warn("skipping unwritable result")
			continue
		}
		p.Log.WithFields(logrus.Fields{
			"file":   name,
			"colors": len(bg),
			"ratio":  TransparencyRatio(cleaned),
		}).Debug("cleaned")
		written = append(written, outPath)
	}
	p.Log.WithFields(logrus.Fields{
		"dir":       inDir,
		"processed": len(written),
		"total":     len(files),
	}).Info("folder done")
	return written, nil
}

// ProcessFrames cleans every PNG frame in inDir with the best-result
// selector and assembles the cleaned frames into a sprite sheet at
// sheetPath. Frames that fail end to end are replaced by a transparent
// placeholder so the sheet keeps its cell order. Temporary per-frame files
// are removed on every exit path.
func (p *Processor) ProcessFrames(inDir, sheetPath string) (string, error) {
	files, err := ListPNGs(inDir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoFrames, inDir)
	}
	p.Log.WithFields(logrus.Fields{"dir": inDir, "frames": len(files)}).Info("processing frames")

	tempDir, err := os.MkdirTemp("", "spritebg-frames-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tempDir)

	framePaths := make([]string, 0, len(files))
	for i, name := range files {
		tempPath := filepath.Join(tempDir, fmt.Sprintf("frame_%02d.png", i))
		if _, err := p.CleanFile(filepath.Join(inDir, name), tempPath); err != nil {
			p.Log.WithError(err).WithField("file", name).Warn("frame failed, substituting placeholder")
			placeholder := imaging.New(placeholderSize, placeholderSize, color.NRGBA{})
			if err := utils.SaveImage(placeholder, tempPath); err != nil {
				return "", err
			}
		}
		framePaths = append(framePaths, tempPath)
	}

	layout := LayoutForCount(len(framePaths))
	p.Log.WithFields(logrus.Fields{
		"columns": layout.Columns,
		"rows":    layout.Rows,
		"frames":  len(framePaths),
	}).Info("assembling sprite sheet")

	sheet := p.AssembleFiles(framePaths, layout.Columns, placeholderSize, placeholderSize)
	if dir := filepath.Dir(sheetPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := utils.SaveImage(sheet, sheetPath); err != nil {
		return "", err
	}
	p.Log.WithFields(logrus.Fields{
		"output": sheetPath,
		"width":  sheet.Rect.Dx(),
		"height": sheet.Rect.Dy(),
	}).Info("sprite sheet created")
	return sheetPath, nil
}

// AssembleFiles loads the frame files and lays them out on a sheet.
// A missing or unreadable frame is logged and its cell left transparent;
// the sheet is still produced.
func (p *Processor) AssembleFiles(paths []string, columns, frameWidth, frameHeight int) *image.NRGBA {
	frames := make([]image.Image, len(paths))
	for i, path := range paths {
		img, err := utils.OpenImage(path)
		if err != nil {
			p.Log.WithError(err).WithField("file", path).Warn("frame missing, leaving cell empty")
			continue
		}
		frames[i] = img
	}
	return Assemble(frames, columns, frameWidth, frameHeight)
}

// ListPNGs returns the .png entries of dir (case-insensitive extension),
// sorted ascending by name.
func ListPNGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func derivedPath(inPath, suffix string) string {
	ext := filepath.Ext(inPath)
	return strings.TrimSuffix(inPath, ext) + suffix + ".png"
}
