/*
Copyright 2026 The Recode Authors.

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

package recerrors

// Code classifies an error raised by the recode libraries.
type Code int

const (
	// Unknown is the code of any error that did not originate here.
	Unknown Code = iota

	// MissingArgument means a required argument, typically the charset
	// name, was not supplied.
	MissingArgument

	// InvalidParameters means the request shape was malformed.
	InvalidParameters

	// UnsupportedCharset means a charset name did not resolve through
	// the alias table or the registry.
	UnsupportedCharset

	// InvalidAlias means an alias target is not a resolvable base
	// charset name.
	InvalidAlias

	// ProviderInitFailure means a charset name resolved but the codec
	// backing it could not be constructed.
	ProviderInitFailure
)

func (c Code) String() string {
	switch c {
	case MissingArgument:
		return "MissingArgument"
	case InvalidParameters:
		return "InvalidParameters"
	case UnsupportedCharset:
		return "UnsupportedCharset"
	case InvalidAlias:
		return "InvalidAlias"
	case ProviderInitFailure:
		return "ProviderInitFailure"
	default:
		return "Unknown"
	}
}
