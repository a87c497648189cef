package httpmetrics

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "", want: "/"},
		{path: "/", want: "/static"},
		{path: "/assets/index-abc.js", want: "/static"},
		{path: "/health", want: "/health"},
		{path: "/metrics", want: "/metrics"},
		{path: "/api/submit", want: "/api/submit"},
		{path: "/api/rental-inquiries", want: "/api/rental-inquiries"},
		{path: "/api/rental-inquiries/3fa85f64-5717-4562-b3fc-2c963f66afa6", want: "/api/rental-inquiries/{id}"},
		{path: "/api/rental-inquiries/whatever", want: "/api/rental-inquiries/{id}"},
		{path: "/api/other/42", want: "/api/other/{param}"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
