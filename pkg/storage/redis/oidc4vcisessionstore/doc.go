/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vcisessionstore

import (
	"encoding/json"

	"github.com/provenid/vcbroker/pkg/service/oidc4vci"
)

type sessionDocument struct {
	Session *oidc4vci.Session `json:"session"`
}

func (d *sessionDocument) MarshalBinary() ([]byte, error) {
	return json.Marshal(d)
}

func (d *sessionDocument) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, d)
}
