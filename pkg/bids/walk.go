package bids

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Dataset enumerates work items by walking a BIDS dataset root on disk.
type Dataset struct {
	Root string
}

func (d *Dataset) Runs() ([]WorkItem, error) {
	return Runs(d.Root)
}

var (
	subjectEntity = regexp.MustCompile(`(?:^|_)sub-([A-Za-z0-9]+)`)
	taskEntity    = regexp.MustCompile(`(?:^|_)task-([A-Za-z0-9]+)`)
	runEntity     = regexp.MustCompile(`(?:^|_)run-([0-9]+)`)
)

// Runs walks root for functional bold runs and returns one work item per run.
// The walk is lexical, so the returned order is deterministic for a given
// tree. Files missing a required filename entity are skipped with a warning;
// an unreadable root is an error.
func Runs(root string) ([]WorkItem, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading dataset root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("dataset root %s is not a directory", root)
	}

	var items []WorkItem
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, "_bold.nii") && !strings.HasSuffix(name, "_bold.nii.gz") {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) != "func" {
			return nil
		}

		subject := entityValue(subjectEntity, name)
		task := entityValue(taskEntity, name)
		run := entityValue(runEntity, name)
		if subject == "" || task == "" || run == "" {
			log.Warnf("Skipping %s: missing sub/task/run filename entity", path)
			return nil
		}

		items = append(items, WorkItem{
			Path:    path,
			Subject: "sub-" + subject,
			Task:    task,
			Run:     run,
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error walking dataset root %s", root)
	}
	return items, nil
}

func entityValue(entity *regexp.Regexp, name string) string {
	match := entity.FindStringSubmatch(name)
	if match == nil {
		return ""
	}
	return match[1]
}
