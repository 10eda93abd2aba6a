/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log is a thin adapter around glog so that callers don't import
// it directly, which would make a future logger swap a tree-wide change.
package log

import (
	"github.com/golang/glog"
)

var (
	// Flush ensures any pending I/O is written.
	Flush = glog.Flush

	// Infof formats arguments like fmt.Printf.
	Infof = glog.Infof

	// Warningf formats arguments like fmt.Printf.
	Warningf = glog.Warningf

	// Errorf formats arguments like fmt.Printf.
	Errorf = glog.Errorf

	// Exitf formats like fmt.Printf, logs at error level and exits.
	Exitf = glog.Exitf
)
