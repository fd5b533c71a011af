/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vpresultstore

import (
	"encoding/json"
	"time"

	"github.com/provenid/vcbroker/pkg/service/oidc4vp"
)

type resultDocument struct {
	Result   *oidc4vp.VerificationResult `json:"result"`
	ExpireAt time.Time                   `json:"expireAt"`
}

func (d *resultDocument) MarshalBinary() ([]byte, error) {
	return json.Marshal(d)
}

func (d *resultDocument) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, d)
}
