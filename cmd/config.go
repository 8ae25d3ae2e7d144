package cmd

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	StockEnforcement string
}

// EnforcesStock reports whether placement must refuse carts that exceed
// catalog stock. Anything but "strict" keeps the permissive behavior where
// stock is decremented without a floor.
func (c Config) EnforcesStock() bool {
	return c.StockEnforcement == "strict"
}
