package splitter

import (
	"fmt"

	"github.com/BurntSushi/toml"

	splitz "github.com/splitz-go/splitz"
)

// Profile is a named strategy configuration as declared in a TOML file:
//
//	[profiles.manuals]
//	strategy = "recursive_character_splitter"
//	chunk_size = 512
//	chunk_overlap = 0.1
//
// Unset fields keep the strategy defaults.
type Profile struct {
	Strategy     string   `toml:"strategy"`
	ChunkSize    int      `toml:"chunk_size"`
	ChunkOverlap float64  `toml:"chunk_overlap"`
	Separators   []string `toml:"separators"`
	MinChunkSize int      `toml:"min_chunk_size"`
	MaxChunkSize int      `toml:"max_chunk_size"`
	HeaderLevels []int    `toml:"header_levels"`
	NumRows      int      `toml:"num_rows"`
	NumColumns   int      `toml:"num_columns"`
	Encoding     string   `toml:"encoding"`
	Language     string   `toml:"language"`
	HTMLTag      string   `toml:"html_tag"`
}

// Build constructs the splitter the profile describes, via the registry.
func (p Profile) Build() (Splitter, error) {
	if p.Strategy == "" {
		return nil, &splitz.ErrConfig{Param: "strategy", Reason: "must name a registered strategy"}
	}
	var opts []Option
	if p.ChunkSize > 0 {
		opts = append(opts, WithChunkSize(p.ChunkSize))
	}
	if p.ChunkOverlap > 0 {
		opts = append(opts, WithChunkOverlap(p.ChunkOverlap))
	}
	if len(p.Separators) > 0 {
		opts = append(opts, WithSeparators(p.Separators))
	}
	if p.MinChunkSize > 0 {
		opts = append(opts, WithMinChunkSize(p.MinChunkSize))
	}
	if p.MaxChunkSize > 0 {
		opts = append(opts, WithMaxChunkSize(p.MaxChunkSize))
	}
	if len(p.HeaderLevels) > 0 {
		opts = append(opts, WithHeaderLevels(p.HeaderLevels))
	}
	if p.NumRows > 0 {
		opts = append(opts, WithNumRows(p.NumRows))
	}
	if p.NumColumns > 0 {
		opts = append(opts, WithNumColumns(p.NumColumns))
	}
	if p.Encoding != "" {
		opts = append(opts, WithEncoding(p.Encoding))
	}
	if p.Language != "" {
		opts = append(opts, WithLanguage(p.Language))
	}
	if p.HTMLTag != "" {
		opts = append(opts, WithHTMLTag(p.HTMLTag))
	}
	return New(p.Strategy, opts...)
}

type profilesFile struct {
	Profiles map[string]Profile `toml:"profiles"`
}

// LoadProfiles reads a TOML file of named profiles and builds a splitter
// per profile.
func LoadProfiles(path string) (map[string]Splitter, error) {
	var file profilesFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	out := make(map[string]Splitter, len(file.Profiles))
	for name, p := range file.Profiles {
		sp, err := p.Build()
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		out[name] = sp
	}
	return out, nil
}
