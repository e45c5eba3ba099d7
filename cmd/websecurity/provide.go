/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"path/filepath"

	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/websecurity/pkg/boltdb"
	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/identitystore"
	"github.com/voedger/websecurity/pkg/identitystore/bbolt"
	"github.com/voedger/websecurity/pkg/identitystore/mem"
	"github.com/voedger/websecurity/pkg/identitystore/rememberme"
	"github.com/voedger/websecurity/pkg/identitystore/token"
	"github.com/voedger/websecurity/pkg/ihttp"
	"github.com/voedger/websecurity/pkg/ihttpimpl"
	"github.com/voedger/websecurity/pkg/isecrets"
	"github.com/voedger/websecurity/pkg/isecretsimpl"
	"github.com/voedger/websecurity/pkg/isecurity"
	"github.com/voedger/websecurity/pkg/isecurityimpl"
	"github.com/voedger/websecurity/pkg/iservices"
	"github.com/voedger/websecurity/pkg/isession"
	"github.com/voedger/websecurity/pkg/isessionmem"
	"github.com/voedger/websecurity/pkg/itokens"
	"github.com/voedger/websecurity/pkg/itokensjwt"
	"github.com/voedger/websecurity/pkg/mechanisms"
	"github.com/voedger/websecurity/pkg/webconstraints"
)

func provideTime() coreutils.ITime {
	return coreutils.NewITime()
}

func provideDB(params CLIParams) (*bolt.DB, func(), error) {
	db, err := boltdb.Open(filepath.Join(params.DataDir, dbFileName))
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database:", err)
		}
	}, nil
}

func provideSecretReader(params CLIParams) isecrets.ISecretReader {
	reader := isecretsimpl.ProvideSecretReader()
	if params.DevSecrets {
		logger.Warning("example JWT secret key is used")
		return itokensjwt.ProvideTestSecretsReader(reader)
	}
	return reader
}

func provideSecretKey(reader isecrets.ISecretReader) (itokensjwt.SecretKeyType, error) {
	key, err := reader.ReadSecret(itokensjwt.SecretKeyJWTName)
	if err != nil {
		return nil, fmt.Errorf("failed to read JWT secret key: %w", err)
	}
	if len(key) < itokensjwt.SecretKeyLength {
		return nil, fmt.Errorf("%w: %d bytes at least expected, got %d", ErrSecretKeyIsTooShort, itokensjwt.SecretKeyLength, len(key))
	}
	return key, nil
}

func provideCallersStore(db *bolt.DB) (*bbolt.Store, error) {
	return bbolt.Provide(db, bbolt.Params{Priority: identitystore.Priority_Persistent})
}

func provideTokenStore(tokens itokens.ITokens) *token.Store {
	return token.Provide(tokens, identitystore.Priority_Token)
}

func provideIdentityStoreHandler(params CLIParams, callers *bbolt.Store, tokens *token.Store) (isecurity.IIdentityStoreHandler, error) {
	stores := []isecurity.IIdentityStore{callers, tokens}
	if len(params.UsersFile) > 0 {
		fileStore, err := mem.ProvideFromFile(mem.Params{Priority: identitystore.Priority_InMemory}, params.UsersFile)
		if err != nil {
			return nil, err
		}
		stores = append(stores, fileStore)
	}
	return identitystore.ProvideHandler(stores...), nil
}

func provideRememberMeStore(params CLIParams, db *bolt.DB, tokens itokens.ITokens, iTime coreutils.ITime) (*rememberme.Store, error) {
	return rememberme.Provide(db, tokens, iTime, params.RememberMeTTL)
}

func provideLoginTokensCleaner(store *rememberme.Store) iservices.IService {
	return store
}

func provideMechanism(params CLIParams, handler isecurity.IIdentityStoreHandler, store *rememberme.Store) (isecurity.IHTTPAuthenticationMechanism, error) {
	var m isecurity.IHTTPAuthenticationMechanism
	switch params.Mechanism {
	case Mechanism_Basic:
		m = mechanisms.Basic(params.Realm, handler)
	case Mechanism_Bearer:
		m = mechanisms.Bearer(params.Realm, handler)
	case Mechanism_Form:
		m = mechanisms.Form(mechanisms.FormParams{LoginPage: path_Login, ErrorPage: path_LoginError}, handler)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMechanism, params.Mechanism)
	}
	if params.RememberMe {
		// the cookie lives as long as the login token it carries
		m = mechanisms.RememberMe(m, store, "", params.RememberMeTTL)
	}
	logger.Info("authentication mechanism:", params.Mechanism)
	return m, nil
}

func provideConstraints(params CLIParams) (*webconstraints.Constraints, error) {
	if len(params.ConstraintsFile) > 0 {
		return webconstraints.ProvideFromFile(params.ConstraintsFile)
	}
	return webconstraints.Provide(webconstraints.Config{
		Constraints: []webconstraints.SecurityConstraint{
			{Name: "admin", URLPatterns: []string{"/api/admin/*"}, Roles: []string{role_Admin}},
			{Name: "api", URLPatterns: []string{"/api/*"}, Roles: []string{webconstraints.RoleAnyAuthenticated}},
		},
	})
}

func provideSessions(params CLIParams, iTime coreutils.ITime) isession.IAuthSessionStore {
	return isessionmem.Provide(params.SessionTTL, iTime)
}

func provideRuntime(params CLIParams, m isecurity.IHTTPAuthenticationMechanism, constraints *webconstraints.Constraints,
	sessions isession.IAuthSessionStore, tokens *token.Store) *isecurityimpl.Runtime {
	cookie := isession.DefaultCookieParams()
	cookie.Secure = params.SecureCookie
	rt := isecurityimpl.New(isecurityimpl.RuntimeParams{
		Mechanism:   m,
		Constraints: constraints,
		Sessions:    sessions,
		Cookie:      cookie,
	})
	registerRoutes(rt, tokens)
	return rt
}

func provideHTTPProcessor(params ihttp.CLIParams, rt *isecurityimpl.Runtime) (ihttp.IHTTPProcessor, func()) {
	return ihttpimpl.NewProcessor(params, rt)
}
