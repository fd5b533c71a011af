/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"

	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"
	vdrpkg "github.com/hyperledger/aries-framework-go/pkg/vdr"
	"github.com/hyperledger/aries-framework-go/pkg/vdr/httpbinding"
	"github.com/hyperledger/aries-framework-go/pkg/vdr/key"
	"github.com/hyperledger/aries-framework-go/pkg/vdr/web"
	tlsutils "github.com/trustbloc/cmdutil-go/pkg/utils/tls"
)

// mode in which to run the vcbroker-rest service
type mode string

const (
	verifier mode = "verifier"
	issuer   mode = "issuer"
	combined mode = "combined"
)

const (
	didMethodKey = "key"
	didMethodWeb = "web"
	didMethodION = "ion"
)

// Configuration for the vcbroker-rest API server.
type Configuration struct {
	RootCAs           *x509.CertPool
	VDR               vdrapi.Registry
	StartupParameters *startupParameters
}

func prepareConfiguration(parameters *startupParameters) (*Configuration, error) {
	rootCAs, err := tlsutils.GetCertPool(parameters.tlsParameters.systemCertPool, parameters.tlsParameters.caCerts)
	if err != nil {
		return nil, err
	}

	vdr, err := createVDRI(parameters.universalResolverURL,
		&tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12})
	if err != nil {
		return nil, err
	}

	return &Configuration{
		RootCAs:           rootCAs,
		VDR:               vdr,
		StartupParameters: parameters,
	}, nil
}

func createVDRI(universalResolver string, tlsConfig *tls.Config) (vdrapi.Registry, error) {
	var opts []vdrpkg.Option

	if universalResolver != "" {
		universalResolverVDRI, err := httpbinding.New(universalResolver,
			httpbinding.WithAccept(acceptsDID), httpbinding.WithHTTPClient(&http.Client{
				Transport: &http.Transport{
					TLSClientConfig: tlsConfig,
				},
			}))
		if err != nil {
			return nil, fmt.Errorf("failed to create new universal resolver vdr: %w", err)
		}

		// add universal resolver vdr
		opts = append(opts, vdrpkg.WithVDR(universalResolverVDRI))
	}

	opts = append(opts, vdrpkg.WithVDR(key.New()), vdrpkg.WithVDR(web.New()))

	return vdrpkg.New(opts...), nil
}

// acceptsDID returns if given did method is resolved through the universal resolver.
func acceptsDID(method string) bool {
	return method == didMethodION
}

func supportedMode(m string) bool {
	return m == string(verifier) || m == string(issuer) || m == string(combined)
}
