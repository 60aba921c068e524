package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHasSameOriginProofWithPolicy(t *testing.T) {
	t.Parallel()

	newReq := func(target string, headers map[string]string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		req.Host = "inflow.example.test"
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req
	}

	tests := []struct {
		name   string
		req    *http.Request
		policy SchemePolicy
		want   bool
	}{
		{
			name: "matching origin",
			req:  newReq("http://inflow.example.test/logout", map[string]string{"Origin": "http://inflow.example.test"}),
			want: true,
		},
		{
			name: "referer fallback",
			req:  newReq("http://inflow.example.test/logout", map[string]string{"Referer": "http://inflow.example.test/pricing"}),
			want: true,
		},
		{
			name: "foreign origin",
			req:  newReq("http://inflow.example.test/logout", map[string]string{"Origin": "http://evil.example.test"}),
			want: false,
		},
		{
			name: "port mismatch",
			req:  newReq("http://inflow.example.test/logout", map[string]string{"Origin": "http://inflow.example.test:8080"}),
			want: false,
		},
		{
			name: "no proof headers",
			req:  newReq("http://inflow.example.test/logout", nil),
			want: false,
		},
		{
			name: "untrusted forwarded proto is ignored",
			req: newReq("https://inflow.example.test/logout", map[string]string{
				"Origin":            "http://inflow.example.test",
				"X-Forwarded-Proto": "http",
			}),
			want: false,
		},
		{
			name: "trusted forwarded proto is used",
			req: newReq("https://inflow.example.test/logout", map[string]string{
				"Origin":            "http://inflow.example.test",
				"X-Forwarded-Proto": "http",
			}),
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HasSameOriginProofWithPolicy(tc.req, tc.policy); got != tc.want {
				t.Fatalf("HasSameOriginProofWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasSameOriginProofNilRequest(t *testing.T) {
	t.Parallel()

	if HasSameOriginProof(nil) {
		t.Fatal("nil request should not prove same origin")
	}
}

func TestIsHTTPSWithPolicy(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "http://inflow.example.test/", nil)
	if IsHTTPS(plain) {
		t.Fatal("plain http request reported as https")
	}

	secure := httptest.NewRequest(http.MethodGet, "https://inflow.example.test/", nil)
	if !IsHTTPS(secure) {
		t.Fatal("https url not reported as https")
	}

	tlsReq := httptest.NewRequest(http.MethodGet, "/", nil)
	tlsReq.TLS = &tls.ConnectionState{}
	if !IsHTTPS(tlsReq) {
		t.Fatal("tls request not reported as https")
	}

	forwarded := httptest.NewRequest(http.MethodGet, "/", nil)
	forwarded.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(forwarded) {
		t.Fatal("forwarded proto trusted without policy")
	}
	if !IsHTTPSWithPolicy(forwarded, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("forwarded proto ignored with trusting policy")
	}
}
