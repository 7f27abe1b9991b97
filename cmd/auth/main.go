package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/oauth2"

	"github.com/rmitchell/fitbit-go/fitbit"
)

const tokenFile = ".fitbit_token.json"

func oauthConfig(clientID, clientSecret, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes: []string{
			string(fitbit.ScopeActivity),
			string(fitbit.ScopeHeartRate),
			string(fitbit.ScopeNutrition),
			string(fitbit.ScopeProfile),
			string(fitbit.ScopeSleep),
			string(fitbit.ScopeWeight),
		},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://www.fitbit.com/oauth2/authorize",
			TokenURL: "https://api.fitbit.com/oauth2/token",
		},
	}
}

func main() {
	clientID := os.Getenv("FITBIT_CLIENT_ID")
	clientSecret := os.Getenv("FITBIT_CLIENT_SECRET")

	if clientID == "" || clientSecret == "" {
		log.Fatal("Error: FITBIT_CLIENT_ID and FITBIT_CLIENT_SECRET environment variables are required.")
	}

	redirectURI := os.Getenv("FITBIT_REDIRECT_URI")
	if redirectURI == "" {
		redirectURI = "http://localhost:8081/callback"
	}

	conf := oauthConfig(clientID, clientSecret, redirectURI)

	// Try to refresh an existing token session first.
	if tok, err := loadToken(); err == nil && tok.RefreshToken != "" {
		fmt.Println("Found existing token session. Attempting refresh...")
		newTok, err := conf.TokenSource(context.Background(), tok).Token()
		if err == nil {
			saveToken(newTok)
			printToken(newTok)
			return
		}
		fmt.Printf("Refresh failed (%v), starting new authorization flow...\n\n", err)
	}

	// No valid session — run the full OAuth authorization code flow.
	runAuthFlow(conf)
}

func runAuthFlow(conf *oauth2.Config) {
	u, err := url.Parse(conf.RedirectURL)
	if err != nil {
		log.Fatalf("Error parsing FITBIT_REDIRECT_URI: %v", err)
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}

	state := fmt.Sprintf("fitbit-go-%d", time.Now().UnixNano())
	authURL := conf.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Println("=== Fitbit OAuth 2.0 Token Generator ===")
	fmt.Println("\n1. IMPORTANT: Ensure you have added the following Redirect URI to your Fitbit application settings:")
	fmt.Printf("   %s\n", conf.RedirectURL)
	fmt.Println("\n2. Open this URL in your browser to authorize:")
	fmt.Printf("\n   %s\n\n", authURL)
	fmt.Printf("Waiting for authorization callback on port %s...\n", port)

	server := &http.Server{Addr: ":" + port}

	http.HandleFunc(u.Path, func(w http.ResponseWriter, r *http.Request) {
		// Check for OAuth error response from Fitbit.
		if errParam := r.URL.Query().Get("error"); errParam != "" {
			desc := r.URL.Query().Get("error_description")
			msg := fmt.Sprintf("OAuth error: %s\nDescription: %s", errParam, desc)
			fmt.Fprintf(os.Stderr, "\n=== OAUTH ERROR ===\n%s\n", msg)
			http.Error(w, msg, http.StatusBadRequest)
			go shutdownSoon(server)
			return
		}

		if got := r.URL.Query().Get("state"); got != state {
			http.Error(w, "State mismatch, rejecting callback", http.StatusUnauthorized)
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "Failed to get auth code from request", http.StatusBadRequest)
			return
		}

		fmt.Println("Received auth code! Exchanging for access token...")

		tok, err := conf.Exchange(r.Context(), code)
		if err != nil {
			http.Error(w, fmt.Sprintf("Token exchange error: %v", err), http.StatusInternalServerError)
			return
		}

		saveToken(tok)
		printToken(tok)

		fmt.Fprintf(w, "Success! You can close this window and check your terminal.")
		go shutdownSoon(server)
	})

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

func shutdownSoon(server *http.Server) {
	time.Sleep(1 * time.Second)
	_ = server.Shutdown(context.Background())
}

func loadToken() (*oauth2.Token, error) {
	f, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(f, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func saveToken(tok *oauth2.Token) {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save token: %v\n", err)
		return
	}
	if err := os.WriteFile(tokenFile, data, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not write %s: %v\n", tokenFile, err)
	}
}

func printToken(tok *oauth2.Token) {
	fmt.Println("\n=== SUCCESS ===")
	fmt.Println("\nExport your token:")
	fmt.Printf("\nexport FITBIT_OAUTH_TOKEN=\"%s\"\n", tok.AccessToken)
	if tok.RefreshToken != "" {
		fmt.Printf("\nRefresh token saved to %s — next time you run this tool, it will auto-refresh without a browser login.\n", tokenFile)
	}
	if !tok.Expiry.IsZero() {
		fmt.Printf("\nToken expires at %s.\n", tok.Expiry.Format(time.RFC3339))
	}
}
