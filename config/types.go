package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0,lte=65535"`
}

// DataConfig locates the two source files
type DataConfig struct {
	RidershipPath string `yaml:"ridershipPath" validate:"required"`
	GeocodePath   string `yaml:"geocodePath" validate:"required"`
	Watch         bool   `yaml:"watch"`
}

// SchemaConfig names the meaningful columns of the traffic file, after
// header normalization
type SchemaConfig struct {
	Network         string   `yaml:"network" validate:"required"`
	Station         string   `yaml:"station" validate:"required"`
	Traffic         string   `yaml:"traffic" validate:"required"`
	Rank            string   `yaml:"rank" validate:"required"`
	Arrondissement  string   `yaml:"arrondissement" validate:"required"`
	Correspondences []string `yaml:"correspondences" validate:"dive,required"`
}

// NetworksConfig contains network label rewriting rules
type NetworksConfig struct {
	Aliases map[string]string `yaml:"aliases" validate:"dive,keys,required,endkeys,required"`
}

// ColorsConfig maps network labels to hex colors
type ColorsConfig struct {
	Share map[string]string `yaml:"share" validate:"dive,hexcolor"`
	Map   map[string]string `yaml:"map" validate:"dive,hexcolor"`
}

// ViewsConfig contains presentation settings
type ViewsConfig struct {
	TopCorrespondences int `yaml:"topCorrespondences" validate:"gt=0,lte=100"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Data     DataConfig     `yaml:"data"`
	Schema   SchemaConfig   `yaml:"schema"`
	Networks NetworksConfig `yaml:"networks"`
	Colors   ColorsConfig   `yaml:"colors"`
	Views    ViewsConfig    `yaml:"views"`
}
