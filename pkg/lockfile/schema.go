package lockfile

import (
	"encoding/json"
	"fmt"
)

// pinState is the "state" object shared by every schema version.
type pinState struct {
	Branch   *string `json:"branch"`
	Revision string  `json:"revision"`
	Version  string  `json:"version"`
}

// entry is a schema-independent lockfile pin.
type entry struct {
	identity string
	location string
	state    pinState
}

// decoder handles one family of schema versions.
type decoder struct {
	accepts func(version int) bool
	decode  func(data []byte) ([]entry, error)
}

var decoders = []decoder{
	{accepts: func(v int) bool { return v == 1 }, decode: decodeV1},
	{accepts: func(v int) bool { return v == 2 || v == 3 }, decode: decodeV2},
}

type fileV1 struct {
	Object struct {
		Pins []struct {
			Package       string   `json:"package"`
			RepositoryURL string   `json:"repositoryURL"`
			State         pinState `json:"state"`
		} `json:"pins"`
	} `json:"object"`
	Version int `json:"version"`
}

func decodeV1(data []byte) ([]entry, error) {
	var f fileV1
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	entries := make([]entry, 0, len(f.Object.Pins))
	for i, p := range f.Object.Pins {
		if p.Package == "" {
			return nil, fmt.Errorf("pin %d has no package name", i)
		}
		entries = append(entries, entry{identity: p.Package, location: p.RepositoryURL, state: p.State})
	}
	return entries, nil
}

type fileV2 struct {
	OriginHash string `json:"originHash,omitempty"`
	Pins       []struct {
		Identity string   `json:"identity"`
		Kind     string   `json:"kind"`
		Location string   `json:"location"`
		State    pinState `json:"state"`
	} `json:"pins"`
	Version int `json:"version"`
}

func decodeV2(data []byte) ([]entry, error) {
	var f fileV2
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	entries := make([]entry, 0, len(f.Pins))
	for i, p := range f.Pins {
		if p.Identity == "" {
			return nil, fmt.Errorf("pin %d has no identity", i)
		}
		entries = append(entries, entry{identity: p.Identity, location: p.Location, state: p.State})
	}
	return entries, nil
}
