package bpyschema

import (
	"strconv"
	"strings"
)

// Version identifies one documentation release by major and minor number.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// String returns the version formatted as "major.minor".
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to,
// or after other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major < other.Major:
		return -1
	case v.Major > other.Major:
		return 1
	case v.Minor < other.Minor:
		return -1
	case v.Minor > other.Minor:
		return 1
	}
	return 0
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// ParseVersion parses a "major.minor" string.
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return Version{}, Errorf(EINVALID, "invalid version %q: expected major.minor", s)
	}
	ma, err := strconv.Atoi(major)
	if err != nil || ma < 0 {
		return Version{}, Errorf(EINVALID, "invalid major version in %q", s)
	}
	mi, err := strconv.Atoi(minor)
	if err != nil || mi < 0 {
		return Version{}, Errorf(EINVALID, "invalid minor version in %q", s)
	}
	return Version{Major: ma, Minor: mi}, nil
}

// Sequence is the ordered set of documentation versions being crawled.
// A sentinel one minor release past the last version is kept alongside
// so that every observed maximum has an exclusive upper bound.
type Sequence struct {
	versions []Version // real versions followed by the sentinel
	index    map[Version]int
}

// NewSequence validates versions and returns a Sequence.
// Versions must be non-empty and strictly increasing.
func NewSequence(versions ...Version) (*Sequence, error) {
	if len(versions) == 0 {
		return nil, Errorf(EINVALID, "version sequence must not be empty")
	}
	for i := 1; i < len(versions); i++ {
		if !versions[i-1].Less(versions[i]) {
			return nil, Errorf(EINVALID, "version sequence must be strictly increasing: %s then %s",
				versions[i-1], versions[i])
		}
	}

	last := versions[len(versions)-1]
	all := make([]Version, 0, len(versions)+1)
	all = append(all, versions...)
	all = append(all, Version{Major: last.Major, Minor: last.Minor + 1})

	index := make(map[Version]int, len(all))
	for i, v := range all {
		index[v] = i
	}
	return &Sequence{versions: all, index: index}, nil
}

// ParseSequence builds a Sequence from a comma-separated list of versions
// and inclusive ranges within one major release, e.g. "3.0-3.6,4.0-4.1".
func ParseSequence(s string) (*Sequence, error) {
	var versions []Version
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		from, to, isRange := strings.Cut(part, "-")
		start, err := ParseVersion(from)
		if err != nil {
			return nil, err
		}
		if !isRange {
			versions = append(versions, start)
			continue
		}

		end, err := ParseVersion(to)
		if err != nil {
			return nil, err
		}
		if start.Major != end.Major {
			return nil, Errorf(EINVALID, "version range %q must stay within one major release", part)
		}
		if end.Less(start) {
			return nil, Errorf(EINVALID, "version range %q is reversed", part)
		}
		for minor := start.Minor; minor <= end.Minor; minor++ {
			versions = append(versions, Version{Major: start.Major, Minor: minor})
		}
	}
	return NewSequence(versions...)
}

// Versions returns the real versions in ascending order, without the sentinel.
func (s *Sequence) Versions() []Version {
	out := make([]Version, len(s.versions)-1)
	copy(out, s.versions)
	return out
}

// Len returns the number of real versions.
func (s *Sequence) Len() int {
	return len(s.versions) - 1
}

// First returns the earliest version.
func (s *Sequence) First() Version {
	return s.versions[0]
}

// Last returns the latest real version.
func (s *Sequence) Last() Version {
	return s.versions[len(s.versions)-2]
}

// Sentinel returns the version one past the last real version.
func (s *Sequence) Sentinel() Version {
	return s.versions[len(s.versions)-1]
}

// Contains reports whether v is one of the real versions.
func (s *Sequence) Contains(v Version) bool {
	i, ok := s.index[v]
	return ok && i < len(s.versions)-1
}

// Next returns the version immediately following v, which is the
// sentinel when v is the last real version.
func (s *Sequence) Next(v Version) (Version, error) {
	i, ok := s.index[v]
	if !ok || i == len(s.versions)-1 {
		return Version{}, Errorf(EINVALID, "version %s is not part of the sequence", v)
	}
	return s.versions[i+1], nil
}

// String returns the versions joined by commas, e.g. "3.0,3.1,3.2".
func (s *Sequence) String() string {
	parts := make([]string, 0, s.Len())
	for _, v := range s.Versions() {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, ",")
}

