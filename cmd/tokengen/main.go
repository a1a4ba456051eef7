// Command tokengen mints an access token for a quote server client using the
// server's configuration (-c/-config, -s secret, -t validity in minutes).
//
//	tokengen -s secret -t 1440 -n front-desk
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/printquote/internal/flagx"
	"github.com/dmitrijs2005/printquote/internal/server/auth"
	"github.com/dmitrijs2005/printquote/internal/server/config"
)

func main() {

	cfg := config.LoadConfig()

	var client string
	fs := flag.NewFlagSet("tokengen", flag.ContinueOnError)
	fs.StringVar(&client, "n", "", "client name embedded in the token")
	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-n"})); err != nil {
		log.Fatalf("%v", err)
	}
	if client == "" {
		log.Fatal("client name is required (-n)")
	}

	token, err := auth.GenerateToken(client, []byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(token)

}
