// Package tags stores per-file tag lists in an extended attribute,
// JSON-encoded. Tags survive rename and move on the same filesystem; the
// xattr namespace keeps them invisible to ordinary directory listings.
package tags

import (
	"encoding/json"
	"strings"

	"github.com/pkg/xattr"

	"github.com/hostkit-io/hostkit/errors"
	"github.com/hostkit-io/hostkit/pathutil"
	"github.com/hostkit-io/hostkit/util"
)

// attrName is the extended attribute holding the tag list.
const attrName = "user.hostkit.tags"

// Get returns the tags attached to path, in stored order. A file without
// the attribute has no tags.
func Get(path string) ([]string, error) {
	path = pathutil.Expand(path)

	names, err := xattr.List(path)
	if err != nil {
		return nil, errors.Tagging(path, err)
	}
	if !util.Contains(names, attrName) {
		return []string{}, nil
	}

	raw, err := xattr.Get(path, attrName)
	if err != nil {
		return nil, errors.Tagging(path, err)
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, errors.Tagging(path, err)
	}
	return tags, nil
}

// Set replaces the tag list on path. Tags are trimmed and deduplicated;
// an empty list removes the attribute entirely.
func Set(path string, tags []string) error {
	path = pathutil.Expand(path)

	cleaned := util.Unique(util.Compact(util.Map(tags, strings.TrimSpace)))
	if len(cleaned) == 0 {
		if err := xattr.Remove(path, attrName); err != nil {
			// Removing tags from an untagged file is a no-op.
			if current, getErr := Get(path); getErr == nil && len(current) == 0 {
				return nil
			}
			return errors.Tagging(path, err)
		}
		return nil
	}

	raw, err := json.Marshal(cleaned)
	if err != nil {
		return errors.Tagging(path, err)
	}
	if err := xattr.Set(path, attrName, raw); err != nil {
		return errors.Tagging(path, err)
	}
	return nil
}

// Add attaches the given tags to path, keeping existing ones.
func Add(path string, add ...string) error {
	current, err := Get(path)
	if err != nil {
		return err
	}
	return Set(path, append(current, add...))
}

// Remove detaches the given tags from path; unknown tags are ignored.
func Remove(path string, remove ...string) error {
	current, err := Get(path)
	if err != nil {
		return err
	}
	kept := util.Filter(current, func(tag string) bool {
		return !util.Contains(remove, tag)
	})
	return Set(path, kept)
}
