// predictcli sends one prediction request to a running server and prints
// the label. Field flags left unset are omitted from the request body, so
// the server's missing-value handling is exercised end to end.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"persona-api/internal/client"
	"persona-api/internal/feature"
)

func main() {
	addr := flag.String("addr", "http://localhost:5000", "base URL of the prediction server")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	healthOnly := flag.Bool("health", false, "only check server health and exit")

	timeAlone := flag.Float64("time-alone", -1, "hours spent alone per day")
	stageFear := flag.String("stage-fear", "", "stage fear, Yes or No")
	socialEvents := flag.Float64("social-events", -1, "social event attendance score")
	goingOutside := flag.Float64("going-outside", -1, "going outside score")
	drained := flag.String("drained", "", "drained after socializing, Yes or No")
	friends := flag.Float64("friends", -1, "friends circle size")
	posts := flag.Float64("posts", -1, "post frequency score")
	flag.Parse()

	c := client.New(*addr, *timeout)

	if *healthOnly {
		loaded, err := c.Health()
		if err != nil {
			log.Fatal().Err(err).Msg("health check failed")
		}
		fmt.Printf("model_loaded=%v\n", loaded)
		if !loaded {
			os.Exit(1)
		}
		return
	}

	rec := feature.Record{}
	setNum := func(name string, v float64) {
		if v >= 0 {
			rec[name] = v
		}
	}
	setStr := func(name, v string) {
		if v != "" {
			rec[name] = v
		}
	}
	setNum(feature.TimeSpentAlone, *timeAlone)
	setStr(feature.StageFear, *stageFear)
	setNum(feature.SocialEventAttendance, *socialEvents)
	setNum(feature.GoingOutside, *goingOutside)
	setStr(feature.DrainedAfterSocializing, *drained)
	setNum(feature.FriendsCircleSize, *friends)
	setNum(feature.PostFrequency, *posts)

	label, err := c.Predict(rec)
	if err != nil {
		log.Fatal().Err(err).Msg("prediction request failed")
	}
	fmt.Println(label)
}
