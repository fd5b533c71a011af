/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	jsonld "github.com/piprate/json-gold/ld"

	"github.com/provenid/vcbroker/cmd/common"
	"github.com/provenid/vcbroker/pkg/event/spi"
	"github.com/provenid/vcbroker/pkg/event/webhook"
	"github.com/provenid/vcbroker/pkg/issuermetadata"
	"github.com/provenid/vcbroker/pkg/observability/metrics"
	noopmetrics "github.com/provenid/vcbroker/pkg/observability/metrics/noop"
	prometheusmetrics "github.com/provenid/vcbroker/pkg/observability/metrics/prometheus"
	"github.com/provenid/vcbroker/pkg/proofsigner"
	"github.com/provenid/vcbroker/pkg/restapi/resterr"
	healthcheckapi "github.com/provenid/vcbroker/pkg/restapi/v1/healthcheck"
	issuerapi "github.com/provenid/vcbroker/pkg/restapi/v1/issuer"
	"github.com/provenid/vcbroker/pkg/restapi/v1/mw"
	verifierapi "github.com/provenid/vcbroker/pkg/restapi/v1/verifier"
	versionapi "github.com/provenid/vcbroker/pkg/restapi/v1/version"
	"github.com/provenid/vcbroker/pkg/service/oidc4vci"
	"github.com/provenid/vcbroker/pkg/service/oidc4vp"
	"github.com/provenid/vcbroker/pkg/service/verifypresentation"
	"github.com/provenid/vcbroker/pkg/storage/mongodb"
	"github.com/provenid/vcbroker/pkg/storage/mongodb/issuedcredentialstore"
	mongosessionstore "github.com/provenid/vcbroker/pkg/storage/mongodb/oidc4vcisessionstore"
	"github.com/provenid/vcbroker/pkg/storage/redis"
	redissessionstore "github.com/provenid/vcbroker/pkg/storage/redis/oidc4vcisessionstore"
	"github.com/provenid/vcbroker/pkg/storage/redis/oidc4vprequeststore"
	"github.com/provenid/vcbroker/pkg/storage/redis/oidc4vpresultstore"
	"github.com/provenid/vcbroker/pkg/userctx"
)

var logger = log.New("vcbroker-startcmd")

const (
	authorizationResponsePath = "/verifier/interactions/authorization-response"

	trustedIssuerPolicyName = "trustedIssuer"

	httpClientTimeout = 30 * time.Second
)

type server interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
}

type httpServer struct {
	srv *http.Server
}

func (s *httpServer) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

func (s *httpServer) ListenAndServeTLS(certFile, keyFile string) error {
	return s.srv.ListenAndServeTLS(certFile, keyFile)
}

type startOpts struct {
	server  server
	version string
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets the HTTP server implementation, used in tests.
func WithHTTPServer(srv server) StartOpts {
	return func(opts *startOpts) {
		opts.server = srv
	}
}

// WithVersion sets the build version reported by the version endpoint.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start vcbroker-rest",
		Long:  "Start vcbroker-rest inside the vcbroker",
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			conf, err := prepareConfiguration(parameters)
			if err != nil {
				return err
			}

			return startServer(conf, opts...)
		},
	}
}

// nolint: funlen,gocyclo
func startServer(conf *Configuration, opts ...StartOpts) error {
	options := &startOpts{}

	for _, opt := range opts {
		opt(options)
	}

	params := conf.StartupParameters

	if params.logLevel != "" {
		common.SetDefaultLogLevel(logger, params.logLevel)
	}

	metricsM, metricsShutdown := createMetrics(params)
	defer metricsShutdown()

	httpClient := &http.Client{
		Timeout: httpClientTimeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{RootCAs: conf.RootCAs, MinVersion: tls.VersionTLS12},
		},
	}

	documentLoader := jsonld.NewDefaultDocumentLoader(httpClient)

	eventPublisher := createEventPublisher(params.webhookURL, httpClient)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(mw.APIKeyAuth(params.apiKey))

	versionapi.NewController(e, versionapi.Config{
		Version:       options.version,
		ServerVersion: os.Getenv("VCBROKER_SERVER_VERSION"),
	})

	healthcheckapi.NewController(e)

	redisClient, err := createRedisClient(params.redisParameters)
	if err != nil {
		return err
	}

	if params.mode != string(issuer) {
		if err = wireVerifier(e, conf, redisClient, documentLoader, eventPublisher, metricsM); err != nil {
			return err
		}
	}

	if params.mode != string(verifier) {
		if err = wireIssuer(e, params, redisClient, httpClient, eventPublisher, metricsM); err != nil {
			return err
		}
	}

	logger.Info("Starting vcbroker-rest server", log.WithURL(params.hostURL))

	srv := options.server
	if srv == nil {
		srv = &httpServer{srv: &http.Server{Addr: params.hostURL, Handler: e}}
	}

	if params.tlsParameters.serveCertPath != "" && params.tlsParameters.serveKeyPath != "" {
		return srv.ListenAndServeTLS(params.tlsParameters.serveCertPath, params.tlsParameters.serveKeyPath)
	}

	return srv.ListenAndServe()
}

func wireVerifier(
	e *echo.Echo,
	conf *Configuration,
	redisClient *redis.Client,
	documentLoader jsonld.DocumentLoader,
	eventPublisher eventPublisher,
	metricsM metrics.Metrics,
) error {
	params := conf.StartupParameters

	requestTTL := int32(params.requestTTL.Seconds())

	requestStore := oidc4vprequeststore.New(redisClient, requestTTL)
	resultStore := oidc4vpresultstore.New(redisClient, requestTTL)

	requestManager := oidc4vp.NewRequestManager(requestStore, resultStore)

	extraPolicies, err := trustedIssuerPolicies(params.trustedIssuers)
	if err != nil {
		return err
	}

	presentationVerifier, err := verifypresentation.New(&verifypresentation.Config{
		VDR:            conf.VDR,
		DocumentLoader: documentLoader,
		PolicyResolver: verifypresentation.NewRegistry(documentLoader),
		ExtraPolicies:  extraPolicies,
		Metrics:        metricsM,
	})
	if err != nil {
		return err
	}

	oidc4vpService := oidc4vp.NewService(&oidc4vp.Config{
		TransactionManager:   requestManager,
		PresentationVerifier: presentationVerifier,
		VDR:                  conf.VDR,
		DocumentLoader:       documentLoader,
		EventSvc:             eventPublisher,
		EventTopic:           params.verifierEventTopic,
		ResponseURI:          params.hostURLExternal + authorizationResponsePath,
		Metrics:              metricsM,
	})

	verifierapi.NewController(e, verifierapi.Config{
		OIDC4VPService: oidc4vpService,
		UIBaseURL:      params.uiBaseURL,
	})

	return nil
}

func wireIssuer(
	e *echo.Echo,
	params *startupParameters,
	redisClient *redis.Client,
	httpClient *http.Client,
	eventPublisher eventPublisher,
	metricsM metrics.Metrics,
) error {
	mongoClient, err := mongodb.New(params.mongoDBURL, params.databaseName)
	if err != nil {
		return err
	}

	sessionStore, err := createSessionStore(params, redisClient, mongoClient)
	if err != nil {
		return err
	}

	signingKey, err := loadProofSigningKey(params.proofSigningKeyFile)
	if err != nil {
		return err
	}

	issuerMetadataService := issuermetadata.NewService(&issuermetadata.Config{
		HTTPClient:  httpClient,
		ClientID:    params.oauthClientID,
		RedirectURL: params.oauthRedirectURL,
	})

	oidc4vciService := oidc4vci.NewService(&oidc4vci.Config{
		SessionManager:  oidc4vci.NewSessionManager(sessionStore),
		IssuerMetadata:  issuerMetadataService,
		CredentialStore: issuedcredentialstore.New(mongoClient),
		ExecutionCtx:    userctx.NewScope(),
		ProofSigner:     proofsigner.New(params.proofSigningKeyID, signingKey),
		EventSvc:        eventPublisher,
		EventTopic:      params.issuerEventTopic,
		PinGenerator:    oidc4vci.NewPinGenerator(),
		Metrics:         metricsM,
	})

	issuerapi.NewController(e, issuerapi.Config{
		OIDC4VCIService: oidc4vciService,
	})

	return nil
}

func createRedisClient(params *redisParameters) (*redis.Client, error) {
	var opts []redis.ClientOpt

	if params.masterName != "" {
		opts = append(opts, redis.WithMasterName(params.masterName))
	}

	if params.password != "" {
		opts = append(opts, redis.WithPassword(params.password))
	}

	client, err := redis.New(params.addrs, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new Redis client: %w", err)
	}

	return client, nil
}

type sessionStore interface {
	Put(session *oidc4vci.Session) error
	Get(id oidc4vci.SessionID) (*oidc4vci.Session, bool, error)
}

func createSessionStore(
	params *startupParameters,
	redisClient *redis.Client,
	mongoClient *mongodb.Client,
) (sessionStore, error) {
	sessionTTL := int32(params.sessionTTL.Seconds())

	if params.sessionStoreType == sessionStoreTypeMongoDBOption {
		store, err := mongosessionstore.New(context.Background(), mongoClient, sessionTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to create a MongoDB session store: %w", err)
		}

		return store, nil
	}

	return redissessionstore.New(redisClient, sessionTTL), nil
}

type eventPublisher interface {
	Publish(ctx context.Context, topic string, messages ...*spi.Event) error
}

func createEventPublisher(webhookURL string, httpClient *http.Client) eventPublisher {
	if webhookURL != "" {
		return webhook.NewPublisher(webhookURL, httpClient)
	}

	return &noopPublisher{}
}

// noopPublisher drops events when no webhook URL is configured.
type noopPublisher struct{}

func (p *noopPublisher) Publish(_ context.Context, _ string, _ ...*spi.Event) error {
	return nil
}

func createMetrics(params *startupParameters) (metrics.Metrics, func()) {
	if params.metricsProviderName != "prometheus" {
		return noopmetrics.GetMetrics(), func() {}
	}

	provider := prometheusmetrics.NewPrometheusProvider(&http.Server{
		Addr:    params.promHTTPURL,
		Handler: promhttp.Handler(),
	})

	go func() {
		if err := provider.Create(); err != nil {
			logger.Error("Metrics HTTP server stopped", log.WithError(err))
		}
	}()

	return provider.Metrics(), func() {
		if err := provider.Destroy(); err != nil {
			logger.Warn("Failed to stop the metrics HTTP server", log.WithError(err))
		}
	}
}

func trustedIssuerPolicies(trustedIssuers []string) ([]*verifypresentation.PolicySpec, error) {
	if len(trustedIssuers) == 0 {
		return nil, nil
	}

	argument, err := json.Marshal(trustedIssuers)
	if err != nil {
		return nil, fmt.Errorf("marshal trusted issuers: %w", err)
	}

	return []*verifypresentation.PolicySpec{{
		Name:     trustedIssuerPolicyName,
		Argument: argument,
	}}, nil
}

func loadProofSigningKey(keyFile string) (ed25519.PrivateKey, error) {
	if keyFile == "" {
		logger.Warn("Proof signing key file is not set. Using an ephemeral key that will not survive a restart.")

		_, privateKey, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generate ephemeral proof signing key: %w", err)
		}

		return privateKey, nil
	}

	pemBytes, err := os.ReadFile(keyFile) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("read proof signing key file: %w", err)
	}

	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("no PEM data found in %s", keyFile)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse proof signing key: %w", err)
	}

	privateKey, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("proof signing key must be Ed25519, got %T", parsed)
	}

	return privateKey, nil
}
