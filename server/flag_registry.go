package server

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/df-mc/pluginapi/server/cmd"
	"github.com/pelletier/go-toml"
)

var (
	// ErrRegistryUnavailable is returned when the flag registry is not configured.
	ErrRegistryUnavailable = errors.New("flag registry is not configured")
	// ErrInvalidLabel is returned when an empty or whitespace command label is provided to a registry operation.
	ErrInvalidLabel = errors.New("invalid command label")
)

// FlagRegistry holds the flags accepted by each command. Entries are persisted in a TOML file.
type FlagRegistry struct {
	mu       sync.RWMutex
	commands map[string][]cmd.Flag
	filePath string
}

type flagRegistryFile struct {
	Commands map[string][]string `toml:"commands"`
}

// LoadFlagRegistry loads the flag registry stored in the file at the provided path. If the file does not exist yet,
// it will be created without any commands.
func LoadFlagRegistry(path string) (*FlagRegistry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("flag registry path must not be empty")
	}
	r := &FlagRegistry{
		commands: make(map[string][]cmd.Flag),
		filePath: path,
	}
	if err := r.reloadFromDisk(); err != nil {
		return nil, err
	}
	return r, nil
}

// Flags returns the flags registered for the command with the label passed. Labels are matched case-insensitively
// and may include a leading slash.
func (r *FlagRegistry) Flags(label string) []cmd.Flag {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.commands[normalizeLabel(label)])
}

// Add registers a flag with the name passed for a command. The returned bool indicates if the flag was newly added.
func (r *FlagRegistry) Add(label, name string) (bool, error) {
	if r == nil {
		return false, ErrRegistryUnavailable
	}
	key := normalizeLabel(label)
	if key == "" {
		return false, ErrInvalidLabel
	}
	f, err := cmd.NewFlag(strings.TrimSpace(name))
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	original := r.commands[key]
	if slices.ContainsFunc(original, func(existing cmd.Flag) bool { return strings.EqualFold(existing.Name(), f.Name()) }) {
		return false, nil
	}
	r.commands[key] = append(slices.Clone(original), f)
	if err := r.writeLocked(); err != nil {
		r.restoreLocked(key, original)
		return false, err
	}
	return true, nil
}

// Remove deletes the flag with the name passed from a command. The returned bool indicates if the flag was present
// before the call.
func (r *FlagRegistry) Remove(label, name string) (bool, error) {
	if r == nil {
		return false, ErrRegistryUnavailable
	}
	key := normalizeLabel(label)
	if key == "" {
		return false, ErrInvalidLabel
	}
	name = strings.TrimSpace(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	original := r.commands[key]
	updated := slices.DeleteFunc(slices.Clone(original), func(f cmd.Flag) bool { return strings.EqualFold(f.Name(), name) })
	if len(updated) == len(original) {
		return false, nil
	}
	r.restoreLocked(key, updated)
	if err := r.writeLocked(); err != nil {
		r.restoreLocked(key, original)
		return false, err
	}
	return true, nil
}

// Labels returns the labels of all commands with registered flags in sorted order.
func (r *FlagRegistry) Labels() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.commands))
}

func (r *FlagRegistry) restoreLocked(key string, flags []cmd.Flag) {
	if len(flags) == 0 {
		delete(r.commands, key)
		return
	}
	r.commands[key] = flags
}

func (r *FlagRegistry) reloadFromDisk() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reloadLocked()
}

func (r *FlagRegistry) reloadLocked() error {
	data := flagRegistryFile{}
	contents, err := os.ReadFile(r.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.commands = make(map[string][]cmd.Flag)
			return r.writeLocked()
		}
		return fmt.Errorf("read flag registry: %w", err)
	}
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &data); err != nil {
			return fmt.Errorf("decode flag registry: %w", err)
		}
	}
	r.commands = make(map[string][]cmd.Flag, len(data.Commands))
	for label, names := range data.Commands {
		key := normalizeLabel(label)
		if key == "" {
			continue
		}
		for _, name := range names {
			f, err := cmd.NewFlag(strings.TrimSpace(name))
			if err != nil {
				return fmt.Errorf("decode flag registry: command %q: %w", label, err)
			}
			if !slices.ContainsFunc(r.commands[key], func(existing cmd.Flag) bool { return strings.EqualFold(existing.Name(), f.Name()) }) {
				r.commands[key] = append(r.commands[key], f)
			}
		}
	}
	return nil
}

func (r *FlagRegistry) writeLocked() error {
	dir := filepath.Dir(r.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create flag registry directory: %w", err)
		}
	}
	data := flagRegistryFile{Commands: make(map[string][]string, len(r.commands))}
	for label, flags := range r.commands {
		names := make([]string, 0, len(flags))
		for _, f := range flags {
			names = append(names, f.Name())
		}
		data.Commands[label] = names
	}
	encoded, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode flag registry: %w", err)
	}
	if err := os.WriteFile(r.filePath, encoded, 0644); err != nil {
		return fmt.Errorf("write flag registry: %w", err)
	}
	return nil
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(label), "/"))
}
