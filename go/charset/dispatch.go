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

import (
	"recode.io/recode/go/charset/unicode"
	"recode.io/recode/go/recerrors"
)

// ToUTF8 converts text from the named charset into UTF-8. Empty input
// converts to empty output for any resolvable name; a missing name is
// MissingArgument and an unresolvable one UnsupportedCharset. A name
// that resolves but whose codec cannot be constructed is
// ProviderInitFailure.
func (r *Recoder) ToUTF8(text []byte, name string) ([]byte, error) {
	const op = "ToUTF8"
	ent, err := r.resolve(op, name)
	if err != nil {
		return nil, err
	}
	if len(text) == 0 {
		return []byte{}, nil
	}

	switch ent.kind {
	case KindUTFTransform:
		out, err := unicode.DecodeToUTF8(ent.form, text)
		if err != nil {
			return nil, recerrors.Wrapf(err, "%s: charset %q", op, name)
		}
		return out, nil

	case KindTableBased:
		handle, err := ent.table.Open(ent.canonical)
		if err != nil {
			return nil, recerrors.Errorf(recerrors.ProviderInitFailure,
				"%s: charset %q: %v", op, name, err)
		}
		units, err := handle.DecodeToUTF16(text)
		if err != nil {
			return nil, recerrors.Wrapf(err, "%s: charset %q", op, name)
		}
		return unicode.UTF16ToUTF8(units), nil

	case KindCJKStateful:
		codec, err := r.cjk.NewCodec(ent.canonical)
		if err != nil {
			return nil, recerrors.Errorf(recerrors.ProviderInitFailure,
				"%s: charset %q: %v", op, name, err)
		}
		out, err := codec.DecodeToUTF8(text)
		if err != nil {
			return nil, recerrors.Wrapf(err, "%s: charset %q", op, name)
		}
		return out, nil
	}

	return nil, recerrors.Errorf(recerrors.UnsupportedCharset, "%s: unsupported charset %q", op, name)
}

// FromUTF8 converts UTF-8 text into the named charset. The failure
// modes mirror ToUTF8.
func (r *Recoder) FromUTF8(text []byte, name string) ([]byte, error) {
	const op = "FromUTF8"
	ent, err := r.resolve(op, name)
	if err != nil {
		return nil, err
	}
	if len(text) == 0 {
		return []byte{}, nil
	}

	switch ent.kind {
	case KindUTFTransform:
		out, err := unicode.EncodeFromUTF8(ent.form, text)
		if err != nil {
			return nil, recerrors.Wrapf(err, "%s: charset %q", op, name)
		}
		return out, nil

	case KindTableBased:
		handle, err := ent.table.Open(ent.canonical)
		if err != nil {
			return nil, recerrors.Errorf(recerrors.ProviderInitFailure,
				"%s: charset %q: %v", op, name, err)
		}
		out, err := handle.EncodeFromUTF16(unicode.UTF8ToUTF16(text))
		if err != nil {
			return nil, recerrors.Wrapf(err, "%s: charset %q", op, name)
		}
		return out, nil

	case KindCJKStateful:
		codec, err := r.cjk.NewCodec(ent.canonical)
		if err != nil {
			return nil, recerrors.Errorf(recerrors.ProviderInitFailure,
				"%s: charset %q: %v", op, name, err)
		}
		out, err := codec.EncodeFromUTF8(text)
		if err != nil {
			return nil, recerrors.Wrapf(err, "%s: charset %q", op, name)
		}
		return out, nil
	}

	return nil, recerrors.Errorf(recerrors.UnsupportedCharset, "%s: unsupported charset %q", op, name)
}
