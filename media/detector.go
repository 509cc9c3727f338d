package media

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// PlayerCommand describes a CLI video player
type PlayerCommand struct {
	Name string
	Path string
	Args []string // Placed before the media path
}

// knownPlayers lists supported players in priority order
// Each exits at end of stream
var knownPlayers = []PlayerCommand{
	{Name: "ffplay", Path: "ffplay", Args: []string{"-autoexit", "-loglevel", "quiet"}},
	{Name: "mpv", Path: "mpv", Args: []string{"--really-quiet", "--keep-open=no"}},
	{Name: "cvlc", Path: "cvlc", Args: []string{"--play-and-exit", "--quiet"}},
}

// fullscreenArgs are appended when fullscreen playback is requested
var fullscreenArgs = map[string][]string{
	"ffplay": {"-fs"},
	"mpv":    {"--fs"},
	"cvlc":   {"--fullscreen"},
}

// DetectPlayer searches for an available video player
// Priority: preferred (name or path) > ffplay > mpv > cvlc
func DetectPlayer(preferred string, fullscreen bool) (*PlayerCommand, error) {
	return detectPlayer(preferred, fullscreen, exec.LookPath)
}

func detectPlayer(preferred string, fullscreen bool, lookPath func(string) (string, error)) (*PlayerCommand, error) {
	candidates := knownPlayers
	if preferred != "" {
		candidates = append([]PlayerCommand{commandFor(preferred)}, knownPlayers...)
	}

	for _, c := range candidates {
		path, err := lookPath(c.Path)
		if err != nil {
			continue
		}
		cmd := PlayerCommand{
			Name: c.Name,
			Path: path,
			Args: append([]string(nil), c.Args...),
		}
		if fullscreen {
			cmd.Args = append(cmd.Args, fullscreenArgs[c.Name]...)
		}
		return &cmd, nil
	}
	return nil, ErrNoPlayer
}

// commandFor resolves a user-supplied player to a known argument set
func commandFor(preferred string) PlayerCommand {
	base := strings.TrimSuffix(filepath.Base(preferred), filepath.Ext(preferred))
	for _, k := range knownPlayers {
		if k.Name == base {
			k.Path = preferred
			return k
		}
	}
	return PlayerCommand{Name: base, Path: preferred}
}
