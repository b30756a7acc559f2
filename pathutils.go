// Package pathutils resolves lists of path specifications (literal files, directories and glob
// masks) into deduplicated lists of absolute file paths, optionally filtered by extension.
//
//	files, err := pathutils.Expand(ctx, pathutils.Options{Formats: []string{".js"}}, "lib", "test/**/*.js")
package pathutils

import (
	pathutils "github.com/gemini-testing/path-utils/internal"
	"github.com/gemini-testing/path-utils/internal/mask"
)

type (
	Options     = pathutils.Options
	GlobOptions = mask.GlobOptions
	MatchPolicy = pathutils.MatchPolicy
)

const (
	MatchPolicyStrict  = pathutils.MatchPolicyStrict
	MatchPolicyLenient = pathutils.MatchPolicyLenient
)

var (
	Expand      = pathutils.Expand
	IsMask      = pathutils.IsMask
	IsAllMasks  = pathutils.IsAllMasks
	ParseConfig = pathutils.ParseConfig
)

var (
	ErrNoMatch       = pathutils.ErrNoMatch
	ErrNotFound      = pathutils.ErrNotFound
	ErrIO            = pathutils.ErrIO
	ErrInvalidMask   = pathutils.ErrInvalidMask
	ErrMissingConfig = pathutils.ErrMissingConfig
	ErrInvalidConfig = pathutils.ErrInvalidConfig
)
