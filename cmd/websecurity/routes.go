/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/websecurity/pkg/coreutils"
	"github.com/voedger/websecurity/pkg/identitystore/token"
	"github.com/voedger/websecurity/pkg/isecurity"
	"github.com/voedger/websecurity/pkg/isecurityimpl"
	"github.com/voedger/websecurity/pkg/mechanisms"
)

var loginPage = `<html><body>
<form method="POST" action="` + mechanisms.SecurityCheckPath + `">
<input name="` + mechanisms.ParamUsername + `" placeholder="name">
<input name="` + mechanisms.ParamPassword + `" type="password" placeholder="password">
<label><input name="` + mechanisms.ParamRememberMe + `" type="checkbox">remember me</label>
<button type="submit">Login</button>
</form>
</body></html>`

func registerRoutes(rt *isecurityimpl.Runtime, tokens *token.Store) {
	rt.HandleFunc(path_Home, handleHome)
	rt.HandleFunc(path_Login, func(w http.ResponseWriter, _ *http.Request) {
		writeHTML(w, http.StatusOK, loginPage)
	})
	rt.HandleFunc(path_LoginError, func(w http.ResponseWriter, _ *http.Request) {
		writeHTML(w, http.StatusUnauthorized, `<html><body>Invalid credentials, <a href="`+path_Home+`">try again</a></body></html>`)
	})
	rt.HandleFunc(path_Logout, func(w http.ResponseWriter, r *http.Request) {
		rt.Logout(w, r)
		http.Redirect(w, r, path_Home, http.StatusFound)
	})
	rt.HandleFunc(path_WhoAmI, handleWhoAmI).Methods(http.MethodGet)
	rt.HandleFunc(path_Token, func(w http.ResponseWriter, r *http.Request) {
		handleToken(w, r, tokens)
	}).Methods(http.MethodPost)
	rt.HandleFunc(path_AdminInfo, func(w http.ResponseWriter, r *http.Request) {
		replyJSON(w, map[string]string{"area": "admin"})
	})
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	name := "guest"
	if p := isecurity.SecurityContextFrom(r.Context()).CallerPrincipal(); p != nil {
		name = p.Name()
	}
	writeHTML(w, http.StatusOK, fmt.Sprintf(`<html><body>Hello, %s! <a href="%s">whoami</a> <a href="%s">logout</a></body></html>`,
		html.EscapeString(name), path_WhoAmI, path_Logout))
}

func handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	sc := isecurity.SecurityContextFrom(r.Context())
	reply := whoAmI{
		Admin:     sc.IsCallerInRole(role_Admin),
		AdminArea: sc.HasAccessToWebResource("/api/admin/*"),
	}
	if p := sc.CallerPrincipal(); p != nil {
		reply.Caller = p.Name()
		reply.Authenticated = true
		reply.Groups = sc.CallerSubject().Groups()
	}
	replyJSON(w, reply)
}

// handleToken issues the bearer token for the authenticated caller
func handleToken(w http.ResponseWriter, r *http.Request, tokens *token.Store) {
	sc := isecurity.SecurityContextFrom(r.Context())
	result := isecurity.NewValidResult(sc.CallerPrincipal(), sc.CallerSubject().Groups())
	tok, err := tokens.IssueToken(result, Default_TokenDuration)
	if err != nil {
		coreutils.ReplyErr(w, err, http.StatusInternalServerError)
		return
	}
	replyJSON(w, tokenReply{Token: tok, ExpiresIn: int64(Default_TokenDuration.Seconds())})
}

func replyJSON(w http.ResponseWriter, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		// notest
		coreutils.ReplyErr(w, err, http.StatusInternalServerError)
		return
	}
	coreutils.ReplyJSON(w, http.StatusOK, string(data))
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set(coreutils.ContentType, "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error("failed to write response:", err)
	}
}
