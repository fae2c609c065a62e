package prompts

// SchemaContext describes the WARM weather database for the SQL generation
// prompt. Kept in sync with migrations.InitSchema by hand.
const SchemaContext = `Database Schema:

1. Tables and Their Relationships:
   - stations
     * Primary Key: station_code (varchar(3))
     * Columns:
       - station_name: Full site name (varchar(100))
       - city: Nearest city (varchar(50))
       - county: Illinois county (varchar(50))
       - latitude: Decimal degrees (numeric(8,5))
       - longitude: Decimal degrees, negative west (numeric(8,5))
       - elevation_m: Elevation above sea level in meters (numeric(6,1))
     * Referenced by:
       - weather_data.station_code -> stations.station_code

   - weather_data
     * Primary Key: (station_code, obs_date)
     * Columns:
       - station_code: Station identifier (varchar(3))
       - obs_date: Observation date (date)
       - max_temp: Daily maximum air temperature, Fahrenheit (numeric(5,1))
       - min_temp: Daily minimum air temperature, Fahrenheit (numeric(5,1))
       - avg_temp: Daily mean air temperature, Fahrenheit (numeric(5,1))
       - precipitation: Daily total precipitation, inches (numeric(5,2))
       - avg_wind_speed: Daily mean wind speed, mph (numeric(5,1))
       - solar_radiation: Daily total solar radiation, MJ/m2 (numeric(6,2))
       - rel_humidity: Daily mean relative humidity, percent (numeric(5,1))
       - soil_temp_4in: 4-inch soil temperature under sod, Fahrenheit (numeric(5,1))

2. Conventions:
   - Temperatures are Fahrenheit, precipitation is inches
   - One row per station per day; missing sensor readings are NULL
   - Use obs_date for all date filtering (e.g. obs_date >= CURRENT_DATE - 7)
   - "temperature" with no qualifier means avg_temp`
