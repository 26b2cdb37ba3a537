// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/collections/fault"
	"github.com/bitmark-inc/collections/hashmap"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultArrayCapacity = 4

	defaultOpenAddressingCapacity   = 53
	defaultOpenAddressingLoadFactor = 0.5
	defaultChainingCapacity         = 11
	defaultChainingLoadFactor       = 1.0
	defaultHash                     = hashmap.Hash1Name

	defaultLogDirectory = "log"
	defaultLogFile      = "collections.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// quadratic probing is only guaranteed to reach a free slot in a
// prime table that is at most half full
const maximumOpenAddressingLoad = 0.5

// ArrayConfiguration - sizing for dynamic arrays
type ArrayConfiguration struct {
	InitialCapacity int `gluamapper:"initial_capacity" json:"initial_capacity"`
}

// MapConfiguration - sizing and hashing for one kind of hash map
type MapConfiguration struct {
	Capacity   int     `gluamapper:"capacity" json:"capacity"`
	LoadFactor float64 `gluamapper:"load_factor" json:"load_factor"`
	Hash       string  `gluamapper:"hash" json:"hash"`
}

// Configuration - everything that can be set from a file
type Configuration struct {
	DynamicArray   ArrayConfiguration   `gluamapper:"dynamic_array" json:"dynamic_array"`
	OpenAddressing MapConfiguration     `gluamapper:"open_addressing" json:"open_addressing"`
	Chaining       MapConfiguration     `gluamapper:"chaining" json:"chaining"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - the values used for anything a file does not set
func Default() *Configuration {
	return &Configuration{
		DynamicArray: ArrayConfiguration{
			InitialCapacity: defaultArrayCapacity,
		},
		OpenAddressing: MapConfiguration{
			Capacity:   defaultOpenAddressingCapacity,
			LoadFactor: defaultOpenAddressingLoadFactor,
			Hash:       defaultHash,
		},
		Chaining: MapConfiguration{
			Capacity:   defaultChainingCapacity,
			LoadFactor: defaultChainingLoadFactor,
			Hash:       defaultHash,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// Read - decode a configuration file over the defaults and verify it
func Read(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default()
	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.Validate(); nil != err {
		return nil, err
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.ErrInvalidFileName
	}
	options.Logging.Directory = ensureAbsolute(dataDirectory, options.Logging.Directory)

	return options, nil
}

// Validate - check ranges and names
func (c *Configuration) Validate() error {
	if c.DynamicArray.InitialCapacity < 1 {
		return fault.ErrInvalidCapacity
	}
	if err := c.OpenAddressing.validate(maximumOpenAddressingLoad); nil != err {
		return err
	}
	return c.Chaining.validate(0)
}

// a zero maximum means the load factor only has to be positive
func (m MapConfiguration) validate(maximumLoad float64) error {
	if m.Capacity < 1 {
		return fault.ErrInvalidCapacity
	}
	if m.LoadFactor <= 0 || (maximumLoad > 0 && m.LoadFactor > maximumLoad) {
		return fault.ErrInvalidLoadFactor
	}
	if _, err := hashmap.HasherByName(m.Hash); nil != err {
		return err
	}
	return nil
}

// Hasher - the hash function selected by name
func (m MapConfiguration) Hasher() (hashmap.Hasher, error) {
	return hashmap.HasherByName(m.Hash)
}

// ensure the path is absolute, if not prepend the directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// check the decode target before handing it to the mapper
func checkStructPointer(config interface{}) error {
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}
	if rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}
	return nil
}
