/*
Package plugins sets up the toolbox for a host agent. The host calls Setup
once at start, gives every toolbox message to Toolbox.Handle and closes the
toolbox at exit.

The toolbox is made of modules. A module is a named group of protocol
families, and the families register their handlers when their package is
imported. A host can register modules of its own with AddModule before it
calls Setup, and they are reported with the built-in ones.
*/
package plugins

import (
	"sync"

	"github.com/findy-network/findy-agent-toolbox/agent/comm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/golang/glog"
)

// Module is a named group of protocol families.
type Module struct {
	Name     string
	Families []string
}

type registry struct {
	sync.RWMutex
	names   map[string]struct{}
	modules []Module
}

var mem = registry{names: make(map[string]struct{})}

func init() {
	AddModule("basicmessage", pltype.ProtocolBasicMessage, pltype.ProtocolAdminBasicMessage)
	AddModule("connections", pltype.ProtocolAdminConnections)
	AddModule("credential-definitions", pltype.ProtocolAdminCredDefs)
	AddModule("dids", pltype.ProtocolAdminDIDs)
	AddModule("invitations", pltype.ProtocolAdminInvitations)
	AddModule("issuer", pltype.ProtocolAdminIssuer)
	AddModule("mediator", pltype.ProtocolAdminMediator)
	AddModule("routing", pltype.ProtocolAdminRouting)
	AddModule("schemas", pltype.ProtocolAdminSchemas)
	AddModule("static-connections", pltype.ProtocolAdminStaticConns)
	AddModule("taa", pltype.ProtocolAdminTAA)
	AddModule("holder", pltype.ProtocolAdminHolder)
}

// AddModule registers a module. Modules are reported in the order they are
// added. It panics if the name is already taken.
func AddModule(name string, families ...string) {
	mem.Lock()
	defer mem.Unlock()
	if _, ok := mem.names[name]; ok {
		panic("module with the name: " + name + " already exists")
	}
	mem.names[name] = struct{}{}
	mem.modules = append(mem.modules, Module{Name: name, Families: families})
}

// Modules returns the registered modules.
func Modules() []Module {
	mem.RLock()
	defer mem.RUnlock()
	modules := make([]Module, len(mem.modules))
	copy(modules, mem.modules)
	return modules
}

// LoadedModules returns the names of the modules which have a handler for
// every family, and the names of the ones which don't.
func LoadedModules() (loaded, missing []string) {
	registered := make(map[string]bool)
	for _, f := range comm.Proc.Families() {
		registered[f] = true
	}
	for _, m := range Modules() {
		ok := true
		for _, f := range m.Families {
			if !registered[f] {
				glog.V(3).Infof("module %s has no handler for family %s", m.Name, f)
				ok = false
			}
		}
		if ok {
			loaded = append(loaded, m.Name)
		} else {
			missing = append(missing, m.Name)
		}
	}
	return loaded, missing
}
