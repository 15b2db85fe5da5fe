// SPDX-License-Identifier: MPL-2.0

package pipeline

import "fmt"

// State is the progress of a pipeline run.
type State int

const (
	Start State = iota
	VersionStamped
	LicenseSet
	CatalogRemoved
	RepoInitialized
	DependenciesUpdated
	EnvAllowed
	HooksInstalled
	CommitMade
	RemoteConfigured
	Done
	Failed
)

var stateNames = [...]string{
	Start:               "Start",
	VersionStamped:      "VersionStamped",
	LicenseSet:          "LicenseSet",
	CatalogRemoved:      "CatalogRemoved",
	RepoInitialized:     "RepoInitialized",
	DependenciesUpdated: "DependenciesUpdated",
	EnvAllowed:          "EnvAllowed",
	HooksInstalled:      "HooksInstalled",
	CommitMade:          "CommitMade",
	RemoteConfigured:    "RemoteConfigured",
	Done:                "Done",
	Failed:              "Failed",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether no further step can run.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}
