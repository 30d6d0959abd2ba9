package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/harwood/mediamap/config/mocks"
	"github.com/spf13/viper"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Catalog: Catalog{
				Scheme: "https",
				Host:   "my-host",
				APIKey: "my-api-key",
			},
			Instances: []Instance{
				{
					Name:        "movies",
					RootFolders: []string{"/media/movies"},
				},
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("instance without root folders fails validation", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("catalog.scheme", "https")
		cu.SetDefault("instances", []map[string]any{{"name": "movies"}})
		_, err := New(cu)
		if err == nil {
			t.Error("TestNew() expected validation error, got nil")
		}
	})

	t.Run("no instances fails validation", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("catalog.scheme", "https")
		_, err := New(cu)
		if err == nil {
			t.Error("TestNew() expected validation error, got nil")
		}
	})
}
