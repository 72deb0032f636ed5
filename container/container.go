// Package container moves chapter text in and out of media containers.
//
// The work is delegated to the MKVToolNix command line tools: mkvmerge
// builds a throwaway .mks file holding only chapters and mkvextract dumps
// those chapters as OGM text or Matroska XML.
package container

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/chapconv/chapconv/constant"
	"github.com/chapconv/chapconv/filesystem"
	"github.com/chapconv/chapconv/grammar"
	"github.com/chapconv/chapconv/log"
	"github.com/chapconv/chapconv/textio"
	"github.com/chapconv/chapconv/util"
	"github.com/chapconv/chapconv/where"
	"github.com/samber/lo"
)

// Container converts between media files and chapter text.
type Container interface {
	// ExtractChapterText returns the chapters of the file at path as OGM lines.
	ExtractChapterText(ctx context.Context, path string) ([]string, error)

	// PackageChapterText turns OGM lines into Matroska chapter XML.
	PackageChapterText(ctx context.Context, lines []string) ([]byte, error)
}

// Runner executes an external program.
type Runner func(ctx context.Context, name string, args ...string) error

// Exec runs name and folds its output into the returned error.
// Exit status 1 means warnings for MKVToolNix and is not treated as failure.
func Exec(ctx context.Context, name string, args ...string) error {
	log.With(log.Fields{"cmd": name, "args": args}).Info("running")

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		log.Warnf("%s finished with warnings: %s", name, strings.TrimSpace(string(out)))
		return nil
	}
	return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
}

var mediaExtensions = []string{".xml", ".mp4", ".mkv"}

// Handles reports whether path must be read through the container tools.
func Handles(path string) bool {
	return lo.Contains(mediaExtensions, strings.ToLower(filepath.Ext(path)))
}

// MKVToolNix implements Container with mkvmerge and mkvextract.
type MKVToolNix struct {
	Mkvmerge   string
	Mkvextract string
	// ChapterCharset is passed to mkvmerge for mp4/mkv input.
	ChapterCharset string
	// Charset encodes the temporary OGM file handed to mkvmerge.
	Charset string
	Run     Runner
}

// NewMKVToolNix creates a container bridge using the given executables.
func NewMKVToolNix(mkvmerge, mkvextract string) *MKVToolNix {
	return &MKVToolNix{
		Mkvmerge:       mkvmerge,
		Mkvextract:     mkvextract,
		ChapterCharset: constant.UTF8,
		Charset:        constant.UTF8Sig,
		Run:            Exec,
	}
}

// Available verifies both executables can be found and can see our files.
func (m *MKVToolNix) Available() error {
	if !filesystem.IsOs() {
		return errors.New("MKVToolNix needs the operating system filesystem")
	}
	for _, bin := range []string{m.Mkvmerge, m.Mkvextract} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%s not found, install MKVToolNix or set its path in the config: %w", bin, err)
		}
	}
	return nil
}

func (m *MKVToolNix) ExtractChapterText(ctx context.Context, path string) ([]string, error) {
	mks, err := scratch("*.mks")
	if err != nil {
		return nil, err
	}
	defer util.Ignore(func() error { return util.Delete(mks) })

	ogm, err := scratch("*.ogm.txt")
	if err != nil {
		return nil, err
	}
	defer util.Ignore(func() error { return util.Delete(ogm) })

	args := []string{"-o", mks}
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		args = append(args, "--chapters", path)
	} else {
		args = append(args, "-A", "-D", "--chapter-charset", m.ChapterCharset, path)
	}

	if err := m.Run(ctx, m.Mkvmerge, args...); err != nil {
		return nil, err
	}
	if err := m.Run(ctx, m.Mkvextract, mks, "chapters", "-s", ogm); err != nil {
		return nil, err
	}

	raw, err := filesystem.API().ReadFile(ogm)
	if err != nil {
		return nil, fmt.Errorf("read extracted chapters: %w", err)
	}

	text, err := textio.Decode(raw, constant.UTF8)
	if err != nil {
		return nil, err
	}
	return textio.Lines(text), nil
}

func (m *MKVToolNix) PackageChapterText(ctx context.Context, lines []string) ([]byte, error) {
	ogm, err := scratch("*.ogm.txt")
	if err != nil {
		return nil, err
	}
	defer util.Ignore(func() error { return util.Delete(ogm) })

	mks, err := scratch("*.mks")
	if err != nil {
		return nil, err
	}
	defer util.Ignore(func() error { return util.Delete(mks) })

	xml, err := scratch("*.xml")
	if err != nil {
		return nil, err
	}
	defer util.Ignore(func() error { return util.Delete(xml) })

	raw, err := textio.Encode(grammar.Join(lines), m.Charset)
	if err != nil {
		return nil, err
	}
	if err := filesystem.API().WriteFile(ogm, raw, 0o644); err != nil {
		return nil, fmt.Errorf("write chapter text: %w", err)
	}

	if err := m.Run(ctx, m.Mkvmerge, "-o", mks, "--chapters", ogm); err != nil {
		return nil, err
	}
	if err := m.Run(ctx, m.Mkvextract, mks, "chapters", xml); err != nil {
		return nil, err
	}

	out, err := filesystem.API().ReadFile(xml)
	if err != nil {
		return nil, fmt.Errorf("read chapter xml: %w", err)
	}
	return out, nil
}

// scratch reserves a unique file name in the temp directory.
func scratch(pattern string) (string, error) {
	f, err := filesystem.API().TempFile(where.Temp(), pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()
	return name, f.Close()
}
