/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/provenid/vcbroker/cmd/common"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the vcbroker-rest instance on. Format: HostName:Port."
	hostURLEnvKey        = "VCBROKER_HOST_URL"

	hostURLExternalFlagName      = "host-url-external"
	hostURLExternalFlagShorthand = "x"
	hostURLExternalEnvKey        = "VCBROKER_HOST_URL_EXTERNAL"
	hostURLExternalFlagUsage     = "This is the URL for the host server as seen externally." +
		" If not provided, then the host url will be used here. Format: http://<HOST>:<PORT> . " +
		commonEnvVarUsageText + hostURLExternalEnvKey

	modeFlagName      = "mode"
	modeFlagShorthand = "m"
	modeFlagUsage     = "Mode in which the vcbroker-rest service will run. Possible values: " +
		"['issuer', 'verifier', 'combined'] (default: combined)."
	modeEnvKey = "VCBROKER_MODE"

	apiKeyFlagName      = "api-key"
	apiKeyFlagShorthand = "k"
	apiKeyFlagUsage     = "API key expected in the X-API-Key header on protected endpoints. " +
		commonEnvVarUsageText + apiKeyEnvKey
	apiKeyEnvKey = "VCBROKER_API_KEY" //nolint: gosec

	redisURLFlagName  = "redis-url"
	redisURLEnvKey    = "VCBROKER_REDIS_URL"
	redisURLFlagUsage = "Comma-separated list of Redis node addresses. " +
		commonEnvVarUsageText + redisURLEnvKey

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameEnvKey    = "VCBROKER_REDIS_MASTER_NAME"
	redisMasterNameFlagUsage = "Redis Sentinel master name. Required when Redis is deployed with Sentinel. " +
		commonEnvVarUsageText + redisMasterNameEnvKey

	redisPasswordFlagName  = "redis-password"
	redisPasswordEnvKey    = "VCBROKER_REDIS_PASSWORD" //nolint: gosec
	redisPasswordFlagUsage = "Redis password. " +
		commonEnvVarUsageText + redisPasswordEnvKey

	mongoDBURLFlagName  = "mongodb-url"
	mongoDBURLEnvKey    = "VCBROKER_MONGODB_URL"
	mongoDBURLFlagUsage = "The URL of the MongoDB instance. Required in issuer and combined modes. " +
		"Format: mongodb://<HOST>:<PORT>. " + commonEnvVarUsageText + mongoDBURLEnvKey

	databaseNameFlagName  = "database-name"
	databaseNameEnvKey    = "VCBROKER_DATABASE_NAME"
	databaseNameFlagUsage = "The name of the MongoDB database. Defaults to " + defaultDatabaseName + ". " +
		commonEnvVarUsageText + databaseNameEnvKey

	sessionStoreTypeFlagName  = "session-store-type"
	sessionStoreTypeEnvKey    = "VCBROKER_SESSION_STORE_TYPE"
	sessionStoreTypeFlagUsage = "Store type for issuance sessions. Supported: redis, mongodb. Default: redis. " +
		commonEnvVarUsageText + sessionStoreTypeEnvKey

	requestTTLFlagName  = "presentation-request-ttl"
	requestTTLEnvKey    = "VCBROKER_PRESENTATION_REQUEST_TTL"
	requestTTLFlagUsage = "How long a presentation request or verification result stays redeemable. " +
		"Defaults to 5m. " + commonEnvVarUsageText + requestTTLEnvKey

	sessionTTLFlagName  = "issuance-session-ttl"
	sessionTTLEnvKey    = "VCBROKER_ISSUANCE_SESSION_TTL"
	sessionTTLFlagUsage = "Issuance session idle timeout. The clock restarts on every session access. " +
		"Defaults to 5m. " + commonEnvVarUsageText + sessionTTLEnvKey

	uiBaseURLFlagName  = "ui-base-url"
	uiBaseURLEnvKey    = "VCBROKER_UI_BASE_URL"
	uiBaseURLFlagUsage = "Base URL of the UI the wallet is redirected to after verification. " +
		"If not provided, then the external host url will be used here. " +
		commonEnvVarUsageText + uiBaseURLEnvKey

	webhookURLFlagName  = "webhook-url"
	webhookURLEnvKey    = "VCBROKER_WEBHOOK_URL"
	webhookURLFlagUsage = "URL interaction events are posted to (optional). " +
		commonEnvVarUsageText + webhookURLEnvKey

	oauthClientIDFlagName  = "oauth-client-id"
	oauthClientIDEnvKey    = "VCBROKER_OAUTH_CLIENT_ID"
	oauthClientIDFlagUsage = "OAuth client ID the broker presents to external credential issuers. " +
		commonEnvVarUsageText + oauthClientIDEnvKey

	oauthRedirectURLFlagName  = "oauth-redirect-url"
	oauthRedirectURLEnvKey    = "VCBROKER_OAUTH_REDIRECT_URL"
	oauthRedirectURLFlagUsage = "Redirect URL registered with external credential issuers. " +
		commonEnvVarUsageText + oauthRedirectURLEnvKey

	proofSigningKeyFileFlagName  = "proof-signing-key-file"
	proofSigningKeyFileEnvKey    = "VCBROKER_PROOF_SIGNING_KEY_FILE" //nolint: gosec
	proofSigningKeyFileFlagUsage = "Path to a PEM file with the Ed25519 key used to sign issuance proofs. " +
		"If missing, an ephemeral key is generated on startup. " +
		commonEnvVarUsageText + proofSigningKeyFileEnvKey

	proofSigningKeyIDFlagName  = "proof-signing-key-id"
	proofSigningKeyIDEnvKey    = "VCBROKER_PROOF_SIGNING_KEY_ID" //nolint: gosec
	proofSigningKeyIDFlagUsage = "Key ID fragment for the proof signing key. Defaults to " +
		defaultProofSigningKeyID + ". " + commonEnvVarUsageText + proofSigningKeyIDEnvKey

	trustedIssuersFlagName  = "trusted-issuers"
	trustedIssuersEnvKey    = "VCBROKER_TRUSTED_ISSUERS"
	trustedIssuersFlagUsage = "Comma-separated list of issuer DIDs. When set, every verified presentation " +
		"must carry credentials issued by one of them. " + commonEnvVarUsageText + trustedIssuersEnvKey

	universalResolverURLFlagName      = "universal-resolver-url"
	universalResolverURLFlagShorthand = "r"
	universalResolverURLFlagUsage     = "Universal Resolver instance is running on. Format: HostName:Port."
	universalResolverURLEnvKey        = "UNIVERSAL_RESOLVER_HOST_URL"

	issuerTopicFlagName  = "issuer-event-topic"
	issuerTopicEnvKey    = "VCBROKER_ISSUER_EVENT_TOPIC"
	issuerTopicFlagUsage = "The name of the issuer event topic. " + commonEnvVarUsageText + issuerTopicEnvKey

	verifierTopicFlagName  = "verifier-event-topic"
	verifierTopicEnvKey    = "VCBROKER_VERIFIER_EVENT_TOPIC"
	verifierTopicFlagUsage = "The name of the verifier event topic. " + commonEnvVarUsageText + verifierTopicEnvKey

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set. " +
		commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "VCBROKER_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path." + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "VCBROKER_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for vcbroker server. " + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "VCBROKER_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for vcbroker server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "VCBROKER_TLS_KEY"

	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "VCBROKER_METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName             = "prom-http-url"
	promHTTPURLEnvKey               = "VCBROKER_PROM_HTTP_URL"
	allowedPromHTTPURLFlagNameUsage = "URL that exposes the prometheus metrics endpoint. Format: HostName:Port. "

	sessionStoreTypeRedisOption   = "redis"
	sessionStoreTypeMongoDBOption = "mongodb"

	defaultDatabaseName      = "vcbroker"
	defaultProofSigningKeyID = "key-1"

	defaultIssuerEventTopic   = "vcbroker.issuer.interaction.v1"
	defaultVerifierEventTopic = "vcbroker.verifier.interaction.v1"
)

const (
	defaultRequestTTL = 5 * time.Minute
	defaultSessionTTL = 5 * time.Minute
)

type startupParameters struct {
	hostURL              string
	hostURLExternal      string
	mode                 string
	apiKey               string
	redisParameters      *redisParameters
	mongoDBURL           string
	databaseName         string
	sessionStoreType     string
	requestTTL           time.Duration
	sessionTTL           time.Duration
	uiBaseURL            string
	webhookURL           string
	oauthClientID        string
	oauthRedirectURL     string
	proofSigningKeyFile  string
	proofSigningKeyID    string
	trustedIssuers       []string
	universalResolverURL string
	issuerEventTopic     string
	verifierEventTopic   string
	tlsParameters        *tlsParameters
	metricsProviderName  string
	promHTTPURL          string
	logLevel             string
}

type redisParameters struct {
	addrs      []string
	masterName string
	password   string
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

// nolint: gocyclo,funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	hostURLExternal := cmdutils.GetUserSetOptionalVarFromString(cmd, hostURLExternalFlagName,
		hostURLExternalEnvKey)
	if hostURLExternal == "" {
		hostURLExternal = hostURL
	}

	mode, err := getMode(cmd)
	if err != nil {
		return nil, err
	}

	apiKey, err := cmdutils.GetUserSetVarFromString(cmd, apiKeyFlagName, apiKeyEnvKey, false)
	if err != nil {
		return nil, err
	}

	redisParams, err := getRedisParameters(cmd)
	if err != nil {
		return nil, err
	}

	mongoDBURL := cmdutils.GetUserSetOptionalVarFromString(cmd, mongoDBURLFlagName, mongoDBURLEnvKey)

	databaseName := cmdutils.GetUserSetOptionalVarFromString(cmd, databaseNameFlagName, databaseNameEnvKey)
	if databaseName == "" {
		databaseName = defaultDatabaseName
	}

	sessionStoreType, err := getSessionStoreType(cmd)
	if err != nil {
		return nil, err
	}

	if mode != string(verifier) && mongoDBURL == "" {
		return nil, fmt.Errorf("%s is required in %s mode", mongoDBURLFlagName, mode)
	}

	requestTTL, err := getDuration(cmd, requestTTLFlagName, requestTTLEnvKey, defaultRequestTTL)
	if err != nil {
		return nil, err
	}

	sessionTTL, err := getDuration(cmd, sessionTTLFlagName, sessionTTLEnvKey, defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	uiBaseURL := cmdutils.GetUserSetOptionalVarFromString(cmd, uiBaseURLFlagName, uiBaseURLEnvKey)
	if uiBaseURL == "" {
		uiBaseURL = hostURLExternal
	}

	webhookURL := cmdutils.GetUserSetOptionalVarFromString(cmd, webhookURLFlagName, webhookURLEnvKey)

	oauthClientID := cmdutils.GetUserSetOptionalVarFromString(cmd, oauthClientIDFlagName, oauthClientIDEnvKey)
	oauthRedirectURL := cmdutils.GetUserSetOptionalVarFromString(cmd, oauthRedirectURLFlagName,
		oauthRedirectURLEnvKey)

	proofSigningKeyFile := cmdutils.GetUserSetOptionalVarFromString(cmd, proofSigningKeyFileFlagName,
		proofSigningKeyFileEnvKey)

	proofSigningKeyID := cmdutils.GetUserSetOptionalVarFromString(cmd, proofSigningKeyIDFlagName,
		proofSigningKeyIDEnvKey)
	if proofSigningKeyID == "" {
		proofSigningKeyID = defaultProofSigningKeyID
	}

	trustedIssuers := cmdutils.GetUserSetOptionalCSVVar(cmd, trustedIssuersFlagName, trustedIssuersEnvKey)

	universalResolverURL := cmdutils.GetUserSetOptionalVarFromString(cmd, universalResolverURLFlagName,
		universalResolverURLEnvKey)

	issuerEventTopic := cmdutils.GetUserSetOptionalVarFromString(cmd, issuerTopicFlagName, issuerTopicEnvKey)
	if issuerEventTopic == "" {
		issuerEventTopic = defaultIssuerEventTopic
	}

	verifierEventTopic := cmdutils.GetUserSetOptionalVarFromString(cmd, verifierTopicFlagName, verifierTopicEnvKey)
	if verifierEventTopic == "" {
		verifierEventTopic = defaultVerifierEventTopic
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	metricsProviderName := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName,
		metricsProviderEnvKey)

	var promHTTPURL string

	if metricsProviderName == "prometheus" {
		promHTTPURL, err = cmdutils.GetUserSetVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey, false)
		if err != nil {
			return nil, err
		}
	}

	loggingLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	return &startupParameters{
		hostURL:              hostURL,
		hostURLExternal:      hostURLExternal,
		mode:                 mode,
		apiKey:               apiKey,
		redisParameters:      redisParams,
		mongoDBURL:           mongoDBURL,
		databaseName:         databaseName,
		sessionStoreType:     sessionStoreType,
		requestTTL:           requestTTL,
		sessionTTL:           sessionTTL,
		uiBaseURL:            uiBaseURL,
		webhookURL:           webhookURL,
		oauthClientID:        oauthClientID,
		oauthRedirectURL:     oauthRedirectURL,
		proofSigningKeyFile:  proofSigningKeyFile,
		proofSigningKeyID:    proofSigningKeyID,
		trustedIssuers:       trustedIssuers,
		universalResolverURL: universalResolverURL,
		issuerEventTopic:     issuerEventTopic,
		verifierEventTopic:   verifierEventTopic,
		tlsParameters:        tlsParams,
		metricsProviderName:  metricsProviderName,
		promHTTPURL:          promHTTPURL,
		logLevel:             loggingLevel,
	}, nil
}

func getMode(cmd *cobra.Command) (string, error) {
	mode, err := cmdutils.GetUserSetVarFromString(cmd, modeFlagName, modeEnvKey, true)
	if err != nil {
		return "", err
	}

	if mode == "" {
		mode = string(combined)
	}

	if !supportedMode(mode) {
		return "", fmt.Errorf("unsupported mode: %s", mode)
	}

	return mode, nil
}

func getSessionStoreType(cmd *cobra.Command) (string, error) {
	storeType, err := cmdutils.GetUserSetVarFromString(cmd, sessionStoreTypeFlagName, sessionStoreTypeEnvKey, true)
	if err != nil {
		return "", err
	}

	if storeType == "" {
		storeType = sessionStoreTypeRedisOption
	}

	if storeType != sessionStoreTypeRedisOption && storeType != sessionStoreTypeMongoDBOption {
		return "", fmt.Errorf("unsupported session store type: %s", storeType)
	}

	return storeType, nil
}

func getRedisParameters(cmd *cobra.Command) (*redisParameters, error) {
	addrs, err := cmdutils.GetUserSetVarFromArrayString(cmd, redisURLFlagName, redisURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	masterName := cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName, redisMasterNameEnvKey)
	password := cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey)

	return &redisParameters{
		addrs:      addrs,
		masterName: masterName,
		password:   password,
	}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPoolString := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsSystemCertPoolFlagName,
		tlsSystemCertPoolEnvKey)

	tlsSystemCertPool := false

	if tlsSystemCertPoolString != "" {
		var err error

		tlsSystemCertPool, err = strconv.ParseBool(tlsSystemCertPoolString)
		if err != nil {
			return nil, err
		}
	}

	tlsCACerts := cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey)

	tlsServeCertPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey)

	tlsServeKeyPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey)

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        tlsCACerts,
		serveCertPath:  tlsServeCertPath,
		serveKeyPath:   tlsServeKeyPath,
	}, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(hostURLExternalFlagName, hostURLExternalFlagShorthand, "", hostURLExternalFlagUsage)
	startCmd.Flags().StringP(modeFlagName, modeFlagShorthand, "", modeFlagUsage)
	startCmd.Flags().StringP(apiKeyFlagName, apiKeyFlagShorthand, "", apiKeyFlagUsage)
	startCmd.Flags().StringSliceP(redisURLFlagName, "", []string{}, redisURLFlagUsage)
	startCmd.Flags().StringP(redisMasterNameFlagName, "", "", redisMasterNameFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(mongoDBURLFlagName, "", "", mongoDBURLFlagUsage)
	startCmd.Flags().StringP(databaseNameFlagName, "", "", databaseNameFlagUsage)
	startCmd.Flags().StringP(sessionStoreTypeFlagName, "", "", sessionStoreTypeFlagUsage)
	startCmd.Flags().StringP(requestTTLFlagName, "", "", requestTTLFlagUsage)
	startCmd.Flags().StringP(sessionTTLFlagName, "", "", sessionTTLFlagUsage)
	startCmd.Flags().StringP(uiBaseURLFlagName, "", "", uiBaseURLFlagUsage)
	startCmd.Flags().StringP(webhookURLFlagName, "", "", webhookURLFlagUsage)
	startCmd.Flags().StringP(oauthClientIDFlagName, "", "", oauthClientIDFlagUsage)
	startCmd.Flags().StringP(oauthRedirectURLFlagName, "", "", oauthRedirectURLFlagUsage)
	startCmd.Flags().StringP(proofSigningKeyFileFlagName, "", "", proofSigningKeyFileFlagUsage)
	startCmd.Flags().StringP(proofSigningKeyIDFlagName, "", "", proofSigningKeyIDFlagUsage)
	startCmd.Flags().StringSliceP(trustedIssuersFlagName, "", []string{}, trustedIssuersFlagUsage)
	startCmd.Flags().StringP(universalResolverURLFlagName, universalResolverURLFlagShorthand, "",
		universalResolverURLFlagUsage)
	startCmd.Flags().StringP(issuerTopicFlagName, "", "", issuerTopicFlagUsage)
	startCmd.Flags().StringP(verifierTopicFlagName, "", "", verifierTopicFlagUsage)
	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSliceP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().StringP(tlsCertificateFlagName, "", "", tlsCertificateFlagUsage)
	startCmd.Flags().StringP(tlsKeyFlagName, "", "", tlsKeyFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().StringP(promHTTPURLFlagName, "", "", allowedPromHTTPURLFlagNameUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
}
