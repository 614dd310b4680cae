// Package config reads and writes the .quince/config file: an INI
// document with a [Namespaces] section mapping prefixes to IRIs and a
// [Remote "name"] subsection per configured remote.
//
// Built directly on go-git's own INI reader/writer,
// plumbing/format/config, rather than a third INI library, so quince
// picks up the exact same quoting and subsection rules Git itself uses
// for .git/config.
package config

import (
	"os"

	gitconfig "github.com/go-git/go-git/v5/plumbing/format/config"

	"github.com/networkedplanet/quince/internal/quinceerr"
)

const (
	namespacesSection = "Namespaces"
	remoteSection     = "Remote"
	remoteEndpointKey = "endpoint"
)

// Config is a handle on a loaded .quince/config file.
type Config struct {
	path string
	raw  *gitconfig.Config
}

// Load reads the config file at path. A missing file yields an empty,
// writable configuration.
func Load(path string) (*Config, error) {
	raw := gitconfig.New()
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &Config{path: path, raw: raw}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := gitconfig.NewDecoder(f).Decode(raw); err != nil {
		return nil, err
	}
	return &Config{path: path, raw: raw}, nil
}

// Save writes the configuration back to its path.
func (c *Config) Save() error {
	f, err := os.Create(c.path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gitconfig.NewEncoder(f).Encode(c.raw)
}

// AddNamespace registers a prefix -> IRI mapping, returning
// quinceerr.NamespaceExistsError if prefix is already bound.
func (c *Config) AddNamespace(prefix, iri string) error {
	section := c.raw.Section(namespacesSection)
	if section.Option(prefix) != "" {
		return &quinceerr.NamespaceExistsError{Prefix: prefix}
	}
	section.SetOption(prefix, iri)
	return nil
}

// RemoveNamespace unregisters prefix, returning
// quinceerr.NoSuchNamespaceError if it is not bound.
func (c *Config) RemoveNamespace(prefix string) error {
	section := c.raw.Section(namespacesSection)
	if section.Option(prefix) == "" {
		return &quinceerr.NoSuchNamespaceError{Prefix: prefix}
	}
	section.RemoveOption(prefix)
	return nil
}

// ExpandPrefix resolves a registered prefix to its IRI, reporting
// whether it was found.
func (c *Config) ExpandPrefix(prefix string) (string, bool) {
	section := c.raw.Section(namespacesSection)
	iri := section.Option(prefix)
	return iri, iri != ""
}

// Namespaces returns every registered prefix -> IRI mapping.
func (c *Config) Namespaces() map[string]string {
	section := c.raw.Section(namespacesSection)
	out := make(map[string]string, len(section.Options))
	for _, opt := range section.Options {
		out[opt.Key] = opt.Value
	}
	return out
}

// AddRemote registers a named remote endpoint, returning
// quinceerr.RemoteExistsError if name is already configured.
func (c *Config) AddRemote(name, endpoint string) error {
	section := c.raw.Section(remoteSection)
	if section.HasSubsection(name) {
		return &quinceerr.RemoteExistsError{Name: name}
	}
	sub := section.Subsection(name)
	sub.SetOption(remoteEndpointKey, endpoint)
	return nil
}

// RemoveRemote unregisters a named remote, returning
// quinceerr.NoSuchRemoteError if it is not configured.
func (c *Config) RemoveRemote(name string) error {
	section := c.raw.Section(remoteSection)
	if !section.HasSubsection(name) {
		return &quinceerr.NoSuchRemoteError{Name: name}
	}
	section.RemoveSubsection(name)
	return nil
}

// Remotes returns every configured remote name -> endpoint mapping.
func (c *Config) Remotes() map[string]string {
	section := c.raw.Section(remoteSection)
	out := make(map[string]string, len(section.Subsections))
	for _, sub := range section.Subsections {
		out[sub.Name] = sub.Option(remoteEndpointKey)
	}
	return out
}
