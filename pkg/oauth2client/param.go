/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oauth2client

import (
	"net/url"

	"golang.org/x/oauth2"
)

type setParam struct{ k, v string }

func (p setParam) setValue(m url.Values) { m.Set(p.k, p.v) }

// AuthCodeOption sets an extra parameter on an authorization request.
type AuthCodeOption interface {
	setValue(url.Values)
}

// SetAuthURLParam sets the key/value query parameter on the request.
func SetAuthURLParam(key, value string) AuthCodeOption {
	return setParam{key, value}
}

// ConvertOptions maps AuthCodeOptions onto their oauth2 equivalents.
func ConvertOptions(opts ...AuthCodeOption) []oauth2.AuthCodeOption {
	var res []oauth2.AuthCodeOption

	for _, o := range opts {
		res = append(res, oauth2.SetAuthURLParam(o.(setParam).k, o.(setParam).v))
	}

	return res
}
