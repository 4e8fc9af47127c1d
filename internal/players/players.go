// Package players provides a factory of AI players from configuration strings.
// It also allows player providers to register themselves.
package players

import (
	"strings"

	"github.com/janpfeifer/connectGo/internal/generics"
	"github.com/janpfeifer/connectGo/internal/parameters"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/pkg/errors"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the column chosen and its expected score, from the first player's perspective.
	// It returns NoMove if there is no move to play.
	Play(board *Board) (move int, score float32)

	// String returns a description of the player.
	String() string
}

// Module creates new players from the given parameters. It must consume (pop) all the parameters it uses:
// left-over parameters are reported as errors.
type Module interface {
	NewPlayer(params parameters.Params) (Player, error)
}

var (
	// Registered modules.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends.
func RegisterModule(name string, module Module) {
	keywordToModules[name] = module
}

// RegisteredModules returns the sorted names of the registered modules.
func RegisteredModules() []string {
	return generics.KeysSlice(keywordToModules)
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the AI.
	DefaultPlayerConfig = "ab:max_depth=7"
)

// New creates a new AI player given the configuration string.
//
// Args:
//
//	config: the module name followed by a colon (":"), followed by a comma-separated list of optional
//		parameters with optional values associated. E.g.: "ab:max_depth=5,seed=3" or "random".
//		If empty, the default is given by DefaultPlayerConfig.
//
// More details on the config are dependent on the module used.
func New(config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	moduleName, paramsConfig, _ := strings.Cut(config, ":")
	module, ok := keywordToModules[moduleName]
	if !ok {
		if len(keywordToModules) == 0 {
			return nil, errors.Errorf("unknown AI player %q: no modules registered, perhaps you need to "+
				"import _ \"github.com/janpfeifer/connectGo/internal/players/default\" in your binary?", moduleName)
		}
		return nil, errors.Errorf("unknown AI player %q, valid values are %q", moduleName, RegisteredModules())
	}

	params := parameters.NewFromConfigString(paramsConfig)
	player, err := module.NewPlayer(params)
	if err == nil {
		err = parameters.CheckAllUsed(params)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create AI player %q", moduleName)
	}
	return player, nil
}
