package service_test

import (
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"waifu-maker/internal/service"
	"waifu-maker/internal/service/mocks"
	"waifu-maker/internal/tts"

	"github.com/spf13/afero"
	"go.uber.org/mock/gomock"
)

func TestVoiceService_GenerateBase64(t *testing.T) {
	tests := []struct {
		name       string
		configured bool
		req        service.SynthesisRequest
		mockSetup  func(*mocks.MockTTSClient)
		wantErr    bool
		checkError func(error) bool
	}{
		{
			name:       "default model",
			configured: true,
			req:        service.SynthesisRequest{Text: "Hello", VoiceID: "v1"},
			mockSetup: func(m *mocks.MockTTSClient) {
				m.EXPECT().Synthesize(gomock.Any(), "Hello", "v1", "eleven_monolingual_v1").Return(fourBytes, nil)
			},
		},
		{
			name:       "caller model",
			configured: true,
			req:        service.SynthesisRequest{Text: "Hello", VoiceID: "v1", ModelID: "eleven_turbo_v2"},
			mockSetup: func(m *mocks.MockTTSClient) {
				m.EXPECT().Synthesize(gomock.Any(), "Hello", "v1", "eleven_turbo_v2").Return(fourBytes, nil)
			},
		},
		{
			name:       "missing key",
			configured: false,
			req:        service.SynthesisRequest{Text: "Hello", VoiceID: "v1"},
			mockSetup:  func(m *mocks.MockTTSClient) {},
			wantErr:    true,
			checkError: func(err error) bool { return errors.Is(err, service.ErrConfiguration) },
		},
		{
			name:       "missing text",
			configured: true,
			req:        service.SynthesisRequest{VoiceID: "v1"},
			mockSetup:  func(m *mocks.MockTTSClient) {},
			wantErr:    true,
			checkError: func(err error) bool {
				var v *service.ValidationError
				return errors.As(err, &v) && v.Message == "Text is required"
			},
		},
		{
			name:       "missing voice",
			configured: true,
			req:        service.SynthesisRequest{Text: "Hello"},
			mockSetup:  func(m *mocks.MockTTSClient) {},
			wantErr:    true,
			checkError: func(err error) bool {
				var v *service.ValidationError
				return errors.As(err, &v) && v.Message == "Voice ID is required"
			},
		},
		{
			name:       "provider failure",
			configured: true,
			req:        service.SynthesisRequest{Text: "Hello", VoiceID: "v1"},
			mockSetup: func(m *mocks.MockTTSClient) {
				m.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("voice not found"))
			},
			wantErr:    true,
			checkError: func(err error) bool { return errors.Is(err, service.ErrExternalService) && err.Error() == "voice not found" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTTS := mocks.NewMockTTSClient(ctrl)
			tt.mockSetup(mockTTS)
			scratch, fs := newScratch()
			svc := service.NewVoiceService(mockTTS, scratch, tt.configured)

			resp, err := svc.GenerateBase64(testContext(), tt.req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("GenerateBase64() expected error, got nil")
				}
				if tt.checkError != nil && !tt.checkError(err) {
					t.Errorf("GenerateBase64() error = %v (%T)", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateBase64() unexpected error: %v", err)
			}

			if resp.Format != "mp3" {
				t.Errorf("Format = %q, want mp3", resp.Format)
			}
			decoded, err := base64.StdEncoding.DecodeString(resp.Audio)
			if err != nil {
				t.Fatalf("audio is not base64: %v", err)
			}
			if string(decoded) != string(fourBytes) {
				t.Errorf("decoded audio = %v, want %v", decoded, fourBytes)
			}
			if resp.Text != tt.req.Text || resp.VoiceID != tt.req.VoiceID {
				t.Errorf("echoed fields = %q/%q", resp.Text, resp.VoiceID)
			}

			entries, _ := afero.ReadDir(fs, "/tmp/audio")
			if len(entries) != 0 {
				t.Errorf("scratch files left behind: %d", len(entries))
			}
		})
	}
}

func TestVoiceService_GenerateFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTTS := mocks.NewMockTTSClient(ctrl)
	mockTTS.EXPECT().Synthesize(gomock.Any(), "Hello", "v1", "eleven_monolingual_v1").Return(fourBytes, nil)

	scratch, fs := newScratch()
	svc := service.NewVoiceService(mockTTS, scratch, true)

	f, err := svc.GenerateFile(testContext(), service.SynthesisRequest{Text: "Hello", VoiceID: "v1"})
	if err != nil {
		t.Fatalf("GenerateFile() unexpected error: %v", err)
	}

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if string(got) != string(fourBytes) {
		t.Errorf("file content = %v, want %v", got, fourBytes)
	}

	if exists, _ := afero.Exists(fs, f.Name()); !exists {
		t.Error("file should exist until closed")
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if exists, _ := afero.Exists(fs, f.Name()); exists {
		t.Error("file should be removed after Close")
	}
}

func TestVoiceService_GenerateFileValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scratch, _ := newScratch()
	svc := service.NewVoiceService(mocks.NewMockTTSClient(ctrl), scratch, true)

	f, err := svc.GenerateFile(testContext(), service.SynthesisRequest{VoiceID: "v1"})
	if f != nil {
		t.Error("GenerateFile() should not return a file on validation failure")
	}
	var v *service.ValidationError
	if !errors.As(err, &v) {
		t.Errorf("GenerateFile() error = %v, want ValidationError", err)
	}
}

func TestVoiceService_ListVoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTTS := mocks.NewMockTTSClient(ctrl)
	mockTTS.EXPECT().ListVoices(gomock.Any()).Return([]tts.Voice{
		{
			VoiceID:  "v1",
			Name:     "Rachel",
			Category: "premade",
			Labels:   map[string]string{"description": "calm", "accent": "american", "age": "young", "gender": "female"},
		},
		{
			VoiceID:  "v2",
			Name:     "Custom",
			Category: "cloned",
		},
	}, nil)

	scratch, _ := newScratch()
	svc := service.NewVoiceService(mockTTS, scratch, true)

	voices, err := svc.ListVoices(testContext())
	if err != nil {
		t.Fatalf("ListVoices() unexpected error: %v", err)
	}

	want := []service.VoiceDescriptor{
		{ID: "v1", Name: "Rachel", Category: "premade", Description: "calm", Accent: "american", Age: "young", Gender: "female"},
		{ID: "v2", Name: "Custom", Category: "cloned"},
	}
	if len(voices) != len(want) {
		t.Fatalf("ListVoices() returned %d voices, want %d", len(voices), len(want))
	}
	for i := range want {
		if voices[i] != want[i] {
			t.Errorf("ListVoices()[%d] = %+v, want %+v", i, voices[i], want[i])
		}
	}
}

func TestVoiceService_ListVoicesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scratch, _ := newScratch()

	unconfigured := service.NewVoiceService(mocks.NewMockTTSClient(ctrl), scratch, false)
	if _, err := unconfigured.ListVoices(testContext()); !errors.Is(err, service.ErrConfiguration) {
		t.Errorf("ListVoices() without key error = %v, want ErrConfiguration", err)
	}

	mockTTS := mocks.NewMockTTSClient(ctrl)
	mockTTS.EXPECT().ListVoices(gomock.Any()).Return(nil, errors.New("bad status 500: boom"))
	svc := service.NewVoiceService(mockTTS, scratch, true)

	_, err := svc.ListVoices(testContext())
	if !errors.Is(err, service.ErrExternalService) {
		t.Fatalf("ListVoices() error = %v, want ErrExternalService", err)
	}
	if err.Error() != "bad status 500: boom" {
		t.Errorf("ListVoices() error text = %q, want raw provider text", err.Error())
	}
}
