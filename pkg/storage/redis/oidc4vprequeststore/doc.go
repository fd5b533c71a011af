/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vprequeststore

import (
	"encoding/json"
	"time"

	"github.com/provenid/vcbroker/pkg/service/oidc4vp"
)

type requestDocument struct {
	Request  *oidc4vp.PresentationRequest `json:"request"`
	ExpireAt time.Time                    `json:"expireAt"`
}

func (d *requestDocument) MarshalBinary() ([]byte, error) {
	return json.Marshal(d)
}

func (d *requestDocument) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, d)
}
