package app

import (
	"github.com/vk/esbundle/internal/registry"
	"github.com/vk/esbundle/modules/httpimport"
)

// coreModules is the definitive list of all plugin modules that are compiled
// into the esbundle binary. Registration order is pipeline order.
var coreModules = []registry.Module{
	&httpimport.Module{},
}
