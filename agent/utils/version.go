package utils

// Version of the toolbox. Release builds set it with
// -ldflags "-X github.com/findy-network/findy-agent-toolbox/agent/utils.Version=..."
var Version = "0.1.0-dev"
