package scope

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// whatIsThisPrefix precedes the creation timestamp in WhatIsThis.
const whatIsThisPrefix = "an example file created at "

// Scope is the template-rendering context for one generator run.
type Scope struct {
	RootPath string   // absolute path to the target project; required
	Args     []string // raw command line tokens after the generator name

	CreatedAt  time.Time // defaulted only when zero
	Filename   string    // Args[0]; empty means undefined
	WhatIsThis string
	SecretKey  string // 32 lowercase hex characters
}

// Validate checks the required input fields. It performs no I/O.
func (s *Scope) Validate() error {
	if s.RootPath == "" {
		return &MissingScopeVariableError{Name: "rootPath"}
	}
	return nil
}

// Populate fills in the derived fields. CreatedAt keeps a caller-supplied
// value; Filename, WhatIsThis and SecretKey are always recomputed.
func (s *Scope) Populate(now time.Time) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}

	s.Filename = ""
	if len(s.Args) > 0 {
		s.Filename = s.Args[0]
	}

	s.WhatIsThis = whatIsThisPrefix + s.CreatedAt.String()

	key, err := NewSecretKey()
	if err != nil {
		return err
	}
	s.SecretKey = key
	return nil
}

// Vars exposes the scope to templates. Keys use the names templates refer
// to; "filename" is omitted when undefined.
func (s *Scope) Vars() map[string]any {
	vars := map[string]any{
		"rootPath":   s.RootPath,
		"args":       s.Args,
		"createdAt":  s.CreatedAt,
		"whatIsThis": s.WhatIsThis,
		"secretKey":  s.SecretKey,
	}
	if s.Filename != "" {
		vars["filename"] = s.Filename
	}
	return vars
}

// NewSecretKey returns the MD5 digest of a fresh random UUID, hex encoded.
func NewSecretKey() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating secret key: %w", err)
	}
	sum := md5.Sum([]byte(id.String()))
	return hex.EncodeToString(sum[:]), nil
}
