// Package weather fetches current conditions for the dashboard's weather
// band.
//
// The client speaks the JSON variant of wttr.in (`?format=j1`), which needs
// no API key. Failures are returned as *FetchError with an ErrorType so the
// dashboard can show a short inline marker ("Timeout", "HTTP Error 503")
// instead of the full chain.
//
//	client := weather.NewClient("", "Shanghai", 10*time.Second)
//	report, err := client.Fetch(ctx)
//	if err != nil {
//	    var fe *weather.FetchError
//	    if errors.As(err, &fe) { fmt.Println(fe.Short()) }
//	}
//	fmt.Println(report.Format())
package weather
