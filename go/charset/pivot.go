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

package charset

// Convert re-encodes text from one named charset into another by
// pivoting through UTF-8: two dispatcher hops, no direct
// charset-to-charset tables. Either hop's failure propagates unchanged,
// so the error identifies which side could not be served.
func (r *Recoder) Convert(text []byte, from, to string) ([]byte, error) {
	pivot, err := r.ToUTF8(text, from)
	if err != nil {
		return nil, err
	}
	return r.FromUTF8(pivot, to)
}
