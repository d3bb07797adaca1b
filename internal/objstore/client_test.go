package objstore

import (
	"context"
	"testing"
)

// TestConfig_Validation validates the Config struct requirements.
func TestConfig_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Endpoint:    "https://account.r2.cloudflarestorage.com",
				AccessKeyID: "access-key",
				SecretKey:   "secret-key",
				BucketName:  "my-bucket",
			},
			wantErr: false,
		},
		{
			name: "missing endpoint",
			cfg: Config{
				AccessKeyID: "access-key",
				SecretKey:   "secret-key",
				BucketName:  "my-bucket",
			},
			wantErr: true,
		},
		{
			name: "missing access key",
			cfg: Config{
				Endpoint:   "https://account.r2.cloudflarestorage.com",
				SecretKey:  "secret-key",
				BucketName: "my-bucket",
			},
			wantErr: true,
		},
		{
			name: "missing secret key",
			cfg: Config{
				Endpoint:    "https://account.r2.cloudflarestorage.com",
				AccessKeyID: "access-key",
				BucketName:  "my-bucket",
			},
			wantErr: true,
		},
		{
			name: "missing bucket",
			cfg: Config{
				Endpoint:    "https://account.r2.cloudflarestorage.com",
				AccessKeyID: "access-key",
				SecretKey:   "secret-key",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(context.Background(), tt.cfg)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
